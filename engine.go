package dashboard

import (
	"context"
	"strconv"
	"sync"

	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
	"k8s.io/utils/clock"

	"github.com/sauravaggarwalcfd/CCPL-GOOGLE-ERP-sub004/internal/metrics"
)

const (
	defaultGalleryLimit = 12
	defaultCalendarCap  = 3
)

// TransitionHook is called after a status change commits, with the committed
// proposal and the updated record.
type TransitionHook func(ctx context.Context, proposal Proposal, updated Record)

// Projection is the result of projecting the active filtered+sorted set into
// one view mode. Exactly one of the four shapes is populated, indicated by
// Mode. All four shapes always derive from the same derived set.
type Projection struct {
	Mode     ViewMode
	Table    *TableProjection
	Kanban   *KanbanProjection
	Calendar *CalendarProjection
	Gallery  *GalleryProjection
}

// Engine wires the workflow definition, the record store and the session
// state together and exposes the filtered, sorted and projected views of the
// record set plus the transition entry point. All operations run to
// completion on the calling goroutine; the mutex only protects callers that
// drive the engine from tests or multiple event sources.
type Engine struct {
	name       string
	definition *WorkflowDefinition
	store      RecordStore
	validator  *TransitionValidator
	clock      clock.Clock
	logger     Logger
	columns    []TableColumn

	galleryLimit int
	calendarCap  int

	hooks []TransitionHook

	mu      sync.Mutex
	sess    session
	derived []Record
	rollup  Rollup
	fresh   bool
}

func New(name string, definition *WorkflowDefinition, store RecordStore, roles RoleComparator, opts ...EngineOption) *Engine {
	e := &Engine{
		name:         name,
		definition:   definition,
		store:        store,
		clock:        clock.RealClock{},
		logger:       noopLogger{},
		galleryLimit: defaultGalleryLimit,
		calendarCap:  defaultCalendarCap,
		sess: session{
			savedFilter: FilterAll(),
			viewMode:    ViewTable,
		},
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.columns == nil {
		for _, key := range Columns() {
			e.columns = append(e.columns, TableColumn{Key: key, Title: string(key)})
		}
	}

	if e.sess.calendarYear == 0 {
		today := DateOf(e.clock.Now())
		e.sess.calendarYear = today.Year
		e.sess.calendarMonth = today.Month
	}

	e.validator = NewTransitionValidator(definition, roles, WithValidatorClock(e.clock))

	return e
}

type EngineOption func(e *Engine)

func WithClock(c clock.Clock) EngineOption {
	return func(e *Engine) {
		e.clock = c
	}
}

func WithLogger(l Logger) EngineOption {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithColumns overrides the display columns of the table projection.
func WithColumns(columns ...TableColumn) EngineOption {
	return func(e *Engine) {
		e.columns = columns
	}
}

// WithGalleryLimit sets how many records the gallery head slice holds.
func WithGalleryLimit(n int) EngineOption {
	return func(e *Engine) {
		e.galleryLimit = n
	}
}

// WithCalendarCap sets the per-day display cap of the calendar projection.
func WithCalendarCap(n int) EngineOption {
	return func(e *Engine) {
		e.calendarCap = n
	}
}

// WithTransitionHook registers a hook invoked after every committed
// transition.
func WithTransitionHook(hook TransitionHook) EngineOption {
	return func(e *Engine) {
		e.hooks = append(e.hooks, hook)
	}
}

func (e *Engine) Name() string {
	return e.name
}

func (e *Engine) Definition() *WorkflowDefinition {
	return e.definition
}

// Session returns a snapshot of the current session state.
func (e *Engine) Session() SessionState {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.sess.snapshot()
}

// SetFilter replaces the active saved filter. The status toggle and search
// text are left in place; the three conditions combine conjunctively.
func (e *Engine) SetFilter(filter SavedFilter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sess.savedFilter = filter
	e.fresh = false
}

// ToggleStatus flips the exact-status toggle. Toggling the active value
// clears it; toggling another value replaces it.
func (e *Engine) ToggleStatus(status Status) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sess.statusToggle = e.sess.statusToggle.Toggle(status)
	e.fresh = false
}

// SetSearch replaces the free-text search term.
func (e *Engine) SetSearch(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sess.searchText = text
	e.fresh = false
}

// SetSort sets an explicit sort column and direction. ColumnNone restores
// native store order.
func (e *Engine) SetSort(key ColumnKey, direction Direction) error {
	if key != ColumnNone {
		if _, err := columnLess(key); err != nil {
			return err
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.sess.sortColumn = key
	e.sess.sortDirection = direction
	e.fresh = false

	return nil
}

// ToggleSort applies the column-header click behaviour: the active column
// flips direction, a new column starts ascending.
func (e *Engine) ToggleSort(key ColumnKey) error {
	if _, err := columnLess(key); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.sess.sortColumn == key && e.sess.sortDirection == DirectionAscending {
		e.sess.sortDirection = DirectionDescending
	} else {
		e.sess.sortColumn = key
		e.sess.sortDirection = DirectionAscending
	}

	e.fresh = false

	return nil
}

// SetViewMode switches the presentation. It never touches the record list,
// filters or sort.
func (e *Engine) SetViewMode(mode ViewMode) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sess.viewMode = mode
}

func (e *Engine) ViewMode() ViewMode {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.sess.viewMode
}

// SetCalendarMonth moves the rendered calendar grid to the given month.
func (e *Engine) SetCalendarMonth(date Date) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.sess.calendarYear = date.Year
	e.sess.calendarMonth = date.Month
}

// SelectRecord marks a record as selected. An empty id clears the selection.
func (e *Engine) SelectRecord(ctx context.Context, id string) error {
	if id != "" {
		if _, err := e.store.Lookup(ctx, id); err != nil {
			return err
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.sess.selectedID = id

	return nil
}

// Selected returns the currently selected record, if any.
func (e *Engine) Selected(ctx context.Context) (*Record, bool, error) {
	e.mu.Lock()
	id := e.sess.selectedID
	e.mu.Unlock()

	if id == "" {
		return nil, false, nil
	}

	record, err := e.store.Lookup(ctx, id)
	if errors.Is(err, ErrRecordNotFound) {
		// NoReturnErr: A selection pointing at a removed record is simply no
		// selection anymore.
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}

	return record, true, nil
}

// GetProjection computes the requested view of the active filtered+sorted
// set. The derived set is cached until the next filter, sort or store
// mutation, so all four modes always agree with each other.
func (e *Engine) GetProjection(ctx context.Context, mode ViewMode) (Projection, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t0 := e.clock.Now()

	derived, err := e.deriveLocked(ctx)
	if err != nil {
		return Projection{}, err
	}

	projection := Projection{Mode: mode}
	switch mode {
	case ViewTable:
		p := ProjectTable(derived, e.columns)
		projection.Table = &p
	case ViewKanban:
		p, err := ProjectKanban(derived, e.definition)
		if err != nil {
			return Projection{}, err
		}
		projection.Kanban = &p
	case ViewCalendar:
		p := ProjectCalendar(derived, e.sess.calendarYear, e.sess.calendarMonth, e.calendarCap)
		projection.Calendar = &p
	case ViewGallery:
		p := ProjectGallery(derived, e.galleryLimit)
		projection.Gallery = &p
	default:
		return Projection{}, errors.New("unknown view mode", j.KV("mode", mode.String()))
	}

	metrics.ProjectionLatency.WithLabelValues(e.name, mode.String()).
		Observe(e.clock.Since(t0).Seconds())

	return projection, nil
}

// Rollup returns the statistics of the active filtered set.
func (e *Engine) Rollup(ctx context.Context) (Rollup, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.deriveLocked(ctx); err != nil {
		return Rollup{}, err
	}

	return e.rollup, nil
}

// deriveLocked recomputes the filtered+sorted set and its rollup if any
// session or store state changed since the last derivation.
func (e *Engine) deriveLocked(ctx context.Context) ([]Record, error) {
	if e.fresh {
		return e.derived, nil
	}

	records, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := ApplyFilter(records, e.sess.savedFilter, e.sess.statusToggle, e.sess.searchText)

	sorted, err := SortBy(filtered, e.sess.sortColumn, e.sess.sortDirection)
	if err != nil {
		return nil, err
	}

	rollup, err := RollupOf(sorted, e.definition)
	if err != nil {
		return nil, err
	}

	e.derived = sorted
	e.rollup = rollup
	e.fresh = true

	metrics.RecordsHeld.WithLabelValues(e.name).Set(float64(len(sorted)))
	e.logger.Debug(ctx, "derived view-set rebuilt", MKV{
		"engine":  e.name,
		"records": strconv.Itoa(len(sorted)),
	})

	return e.derived, nil
}

// Propose validates a transition against the record's current stored state
// and returns the uncommitted proposal.
func (e *Engine) Propose(ctx context.Context, recordID string, toStatus Status, actorRole Role) (Proposal, error) {
	record, err := e.store.Lookup(ctx, recordID)
	if err != nil {
		return Proposal{}, err
	}

	return e.validator.RequestTransition(*record, toStatus, actorRole)
}

// Apply commits a proposal to the store and invalidates the derived set.
func (e *Engine) Apply(ctx context.Context, proposal Proposal) error {
	updated, err := e.store.ApplyTransition(ctx, proposal)
	if err != nil {
		metrics.TransitionAttempts.WithLabelValues(e.name, transitionOutcome(err)).Inc()
		return err
	}

	metrics.TransitionAttempts.WithLabelValues(e.name, "committed").Inc()

	e.mu.Lock()
	e.fresh = false
	e.mu.Unlock()

	e.logger.Debug(ctx, "status transition committed", MKV{
		"record_id": proposal.RecordID,
		"from":      string(proposal.FromStatus),
		"to":        string(proposal.ToStatus),
	})

	for _, hook := range e.hooks {
		hook(ctx, proposal, *updated)
	}

	return nil
}

// RequestTransition validates and commits a status change in one step. All
// failures come back as explicit results; the record is unchanged on any
// failure.
func (e *Engine) RequestTransition(ctx context.Context, recordID string, toStatus Status, actorRole Role) (Proposal, error) {
	proposal, err := e.Propose(ctx, recordID, toStatus, actorRole)
	if err != nil {
		metrics.TransitionAttempts.WithLabelValues(e.name, transitionOutcome(err)).Inc()
		return Proposal{}, err
	}

	err = e.Apply(ctx, proposal)
	if err != nil {
		return Proposal{}, err
	}

	return proposal, nil
}

// Upsert writes a record through to the store and invalidates the derived
// set.
func (e *Engine) Upsert(ctx context.Context, record Record) error {
	err := e.store.Upsert(ctx, record)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.fresh = false
	e.mu.Unlock()

	return nil
}

func transitionOutcome(err error) string {
	switch {
	case errors.Is(err, ErrIllegalTransition):
		return "illegal"
	case errors.Is(err, ErrInsufficientRole):
		return "insufficient_role"
	case errors.Is(err, ErrStaleRecord):
		return "stale"
	case errors.Is(err, ErrUnknownStatus):
		return "unknown_status"
	default:
		return "error"
	}
}
