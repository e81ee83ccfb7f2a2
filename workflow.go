package dashboard

import (
	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"

	"github.com/sauravaggarwalcfd/CCPL-GOOGLE-ERP-sub004/internal/graph"
)

// WorkflowDefinition is the immutable description of a record type's statuses,
// stage groups and legal transitions. One definition governs every view of a
// record type; construct it once via NewDefinition and share it.
type WorkflowDefinition struct {
	name        string
	stageOrder  []StageGroup
	statusOrder []Status
	descriptors map[Status]StatusDescriptor
	statusGraph *graph.Graph
}

func (d *WorkflowDefinition) Name() string {
	return d.name
}

// StageGroups returns the declared stage groups in display order.
func (d *WorkflowDefinition) StageGroups() []StageGroup {
	groups := make([]StageGroup, len(d.stageOrder))
	copy(groups, d.stageOrder)
	return groups
}

// Statuses returns the declared status descriptors in declaration order.
func (d *WorkflowDefinition) Statuses() []StatusDescriptor {
	descriptors := make([]StatusDescriptor, 0, len(d.statusOrder))
	for _, code := range d.statusOrder {
		descriptors = append(descriptors, d.descriptors[code])
	}

	return descriptors
}

// Descriptor returns the descriptor for the given status code.
func (d *WorkflowDefinition) Descriptor(code Status) (StatusDescriptor, error) {
	descriptor, ok := d.descriptors[code]
	if !ok {
		return StatusDescriptor{}, errors.Wrap(ErrUnknownStatus, "", j.KV("status", string(code)))
	}

	return descriptor, nil
}

// StageOf returns the stage group the status belongs to.
func (d *WorkflowDefinition) StageOf(code Status) (StageGroup, error) {
	descriptor, err := d.Descriptor(code)
	if err != nil {
		return "", err
	}

	return descriptor.StageGroup, nil
}

// IsValidTransition reports whether to is directly reachable from from.
// A transition onto the same status is a no-op and always valid.
func (d *WorkflowDefinition) IsValidTransition(from Status, to Status) bool {
	if from == to {
		return true
	}

	for _, next := range d.statusGraph.Transitions(string(from)) {
		if next == string(to) {
			return true
		}
	}

	return false
}

// IsTerminal reports whether the status has no outgoing transitions.
func (d *WorkflowDefinition) IsTerminal(code Status) bool {
	return d.statusGraph.IsTerminal(string(code))
}

// EntryStatuses returns the statuses with no incoming transitions. Every
// definition has at least one; Build enforces it.
func (d *WorkflowDefinition) EntryStatuses() []Status {
	info := d.statusGraph.Info()
	entries := make([]Status, 0, len(info.StartingNodes))
	for _, node := range info.StartingNodes {
		entries = append(entries, Status(node))
	}

	return entries
}

func (d *WorkflowDefinition) stageIndex(group StageGroup) int {
	for i, g := range d.stageOrder {
		if g == group {
			return i
		}
	}

	return -1
}
