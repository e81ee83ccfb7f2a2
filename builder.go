package dashboard

import (
	"github.com/luno/jettison/errors"
	"github.com/luno/jettison/j"

	"github.com/sauravaggarwalcfd/CCPL-GOOGLE-ERP-sub004/internal/graph"
)

// NewDefinition returns a Builder for a workflow definition with the given
// name and stage groups in display order.
func NewDefinition(name string, stageGroups ...StageGroup) *Builder {
	return &Builder{
		definition: &WorkflowDefinition{
			name:        name,
			stageOrder:  stageGroups,
			descriptors: make(map[Status]StatusDescriptor),
			statusGraph: graph.New(),
		},
	}
}

type Builder struct {
	definition *WorkflowDefinition
	errs       []error
}

// AddStatus declares a status. Transitions listed in AllowedNext are added to
// the graph; further edges can be added with AddTransition.
func (b *Builder) AddStatus(descriptor StatusDescriptor) {
	if _, ok := b.definition.descriptors[descriptor.Code]; ok {
		b.errs = append(b.errs, errors.Wrap(ErrDuplicateStatus, "", j.KV("status", string(descriptor.Code))))
		return
	}

	b.definition.descriptors[descriptor.Code] = descriptor
	b.definition.statusOrder = append(b.definition.statusOrder, descriptor.Code)

	b.definition.statusGraph.AddNode(string(descriptor.Code))
	for _, to := range descriptor.AllowedNext {
		b.definition.statusGraph.AddTransition(string(descriptor.Code), string(to))
	}
}

// AddTransition adds a directed edge between two declared statuses. The edge
// is also appended to the origin's AllowedNext set.
func (b *Builder) AddTransition(from Status, to Status) {
	b.definition.statusGraph.AddTransition(string(from), string(to))

	descriptor, ok := b.definition.descriptors[from]
	if !ok {
		// Build reports the dangling origin; nothing to append onto.
		return
	}

	for _, next := range descriptor.AllowedNext {
		if next == to {
			return
		}
	}

	descriptor.AllowedNext = append(descriptor.AllowedNext, to)
	b.definition.descriptors[from] = descriptor
}

// Build validates the definition and returns it. The checks guarantee the
// invariants every downstream component relies on: no dangling transition
// targets, every status inside a declared stage group, unique colors, at
// least one entry status, and no transition that regresses to an earlier
// stage group.
func (b *Builder) Build() (*WorkflowDefinition, error) {
	d := b.definition

	if len(b.errs) > 0 {
		return nil, b.errs[0]
	}

	colors := make(map[string]Status)
	for _, code := range d.statusOrder {
		descriptor := d.descriptors[code]

		if d.stageIndex(descriptor.StageGroup) < 0 {
			return nil, errors.Wrap(ErrOrphanStatus, "",
				j.MKV{"status": string(code), "stage_group": string(descriptor.StageGroup)},
			)
		}

		if descriptor.Color != "" {
			if other, ok := colors[descriptor.Color]; ok {
				return nil, errors.Wrap(ErrDuplicateStatus, "status color reused",
					j.MKV{"status": string(code), "clashes_with": string(other)},
				)
			}
			colors[descriptor.Color] = code
		}
	}

	// Every graph node must be a declared status so that no transition can
	// target an undefined status.
	for _, node := range d.statusGraph.Nodes() {
		if _, ok := d.descriptors[Status(node)]; !ok {
			return nil, errors.Wrap(ErrDanglingTransition, "", j.KV("status", node))
		}
	}

	for _, transition := range d.statusGraph.Info().Transitions {
		fromStage := d.descriptors[Status(transition.From)].StageGroup
		toStage := d.descriptors[Status(transition.To)].StageGroup

		// Status cycles within the same stage group are legal; moving a record
		// back to an earlier stage group is not.
		if d.stageIndex(toStage) < d.stageIndex(fromStage) {
			return nil, errors.Wrap(ErrStageRegression, "",
				j.MKV{"from": transition.From, "to": transition.To},
			)
		}
	}

	if len(d.EntryStatuses()) == 0 {
		return nil, errors.Wrap(ErrNoEntryStatus, "", j.KV("workflow", d.name))
	}

	return d, nil
}
