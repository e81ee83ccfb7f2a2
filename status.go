package dashboard

// Status is the lifecycle status code of a record, e.g. "Draft" or "Approved".
// The set of valid codes for a record type is owned by its WorkflowDefinition.
type Status string

// StageGroup is a coarse lifecycle bucket that one or more statuses belong to.
// Stage groups are ordered and the order drives kanban column layout.
type StageGroup string

// Role is an opaque privilege level carried as data. The engine never defines
// an ordering over roles; it delegates comparison to a RoleComparator.
type Role string

// RoleComparator reports whether the actor's role meets or exceeds the
// required role. Implementations own the privilege ordering.
type RoleComparator interface {
	AtLeast(actor Role, required Role) bool
}

// RoleComparatorFunc adapts a function to the RoleComparator interface.
type RoleComparatorFunc func(actor Role, required Role) bool

func (f RoleComparatorFunc) AtLeast(actor Role, required Role) bool {
	return f(actor, required)
}

// StatusDescriptor describes a single status within a workflow definition.
type StatusDescriptor struct {
	Code  Status
	Label string
	// Color is presentation only but must be unique per status code so that
	// every view renders a status consistently.
	Color      string
	StageGroup StageGroup
	// AllowedNext holds the status codes directly reachable from this status.
	// An empty set marks the status as terminal.
	AllowedNext []Status
	// RequiredRole is the minimum privilege needed to transition a record
	// into this status. Empty means no privilege is required.
	RequiredRole Role
}
