package dashboard

import (
	"time"

	"github.com/google/uuid"
	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"
	"k8s.io/utils/clock"
)

// Proposal is a validated but uncommitted status change. It carries the
// record version it was computed from so the store can detect staleness at
// commit time.
type Proposal struct {
	ID         string
	RecordID   string
	FromStatus Status
	ToStatus   Status
	ProposedAt time.Time

	// RecordVersion is the version of the record snapshot the proposal was
	// validated against.
	RecordVersion int64
}

// TransitionValidator decides the legality of a requested status change.
// It is pure: given the same record snapshot, target status and actor role
// it always returns the same decision and never mutates anything.
type TransitionValidator struct {
	definition *WorkflowDefinition
	roles      RoleComparator
	clock      clock.PassiveClock
}

func NewTransitionValidator(definition *WorkflowDefinition, roles RoleComparator, opts ...ValidatorOption) *TransitionValidator {
	v := &TransitionValidator{
		definition: definition,
		roles:      roles,
		clock:      clock.RealClock{},
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

type ValidatorOption func(v *TransitionValidator)

func WithValidatorClock(c clock.PassiveClock) ValidatorOption {
	return func(v *TransitionValidator) {
		v.clock = c
	}
}

// RequestTransition validates moving the record to toStatus on behalf of
// actorRole and returns the proposed state change. The record itself is left
// untouched; committing the proposal is the store's job.
func (v *TransitionValidator) RequestTransition(record Record, toStatus Status, actorRole Role) (Proposal, error) {
	descriptor, err := v.definition.Descriptor(toStatus)
	if err != nil {
		return Proposal{}, err
	}

	// A record whose status is not in the definition is a data-integrity
	// error, reported before transition legality.
	if _, err := v.definition.Descriptor(record.Status); err != nil {
		return Proposal{}, errors.Wrap(err, "record carries an undefined status", j.KV("record_id", record.ID))
	}

	if !v.definition.IsValidTransition(record.Status, toStatus) {
		return Proposal{}, errors.Wrap(ErrIllegalTransition, "",
			j.MKV{
				"record_id": record.ID,
				"from":      string(record.Status),
				"to":        string(toStatus),
			},
		)
	}

	if descriptor.RequiredRole != "" && !v.roles.AtLeast(actorRole, descriptor.RequiredRole) {
		return Proposal{}, errors.Wrap(ErrInsufficientRole, "",
			j.MKV{
				"record_id":     record.ID,
				"actor_role":    string(actorRole),
				"required_role": string(descriptor.RequiredRole),
			},
		)
	}

	return Proposal{
		ID:            uuid.New().String(),
		RecordID:      record.ID,
		FromStatus:    record.Status,
		ToStatus:      toStatus,
		ProposedAt:    v.clock.Now(),
		RecordVersion: record.Version,
	}, nil
}
