package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestingDefinition returns a purchase-order workflow used by the engine and
// adapter tests:
//
//	Draft -> Pending -> Approved -> Partial -> Received
//	        \> Cancelled   \> Rejected
//
// with the stage groups Not Started, In Progress and Complete.
func TestingDefinition(t testing.TB) *WorkflowDefinition {
	builder := NewDefinition("purchase_order",
		"Not Started",
		"In Progress",
		"Complete",
	)

	builder.AddStatus(StatusDescriptor{
		Code:        "Draft",
		Label:       "Draft",
		Color:       "#9e9e9e",
		StageGroup:  "Not Started",
		AllowedNext: []Status{"Pending", "Cancelled"},
	})
	builder.AddStatus(StatusDescriptor{
		Code:        "Pending",
		Label:       "Pending Approval",
		Color:       "#ff9800",
		StageGroup:  "In Progress",
		AllowedNext: []Status{"Approved", "Rejected", "Cancelled"},
	})
	builder.AddStatus(StatusDescriptor{
		Code:         "Approved",
		Label:        "Approved",
		Color:        "#4caf50",
		StageGroup:   "In Progress",
		AllowedNext:  []Status{"Partial", "Received", "Cancelled"},
		RequiredRole: "manager",
	})
	builder.AddStatus(StatusDescriptor{
		Code:         "Partial",
		Label:        "Partially Received",
		Color:        "#03a9f4",
		StageGroup:   "In Progress",
		AllowedNext:  []Status{"Partial", "Received"},
		RequiredRole: "clerk",
	})
	builder.AddStatus(StatusDescriptor{
		Code:         "Received",
		Label:        "Received",
		Color:        "#2e7d32",
		StageGroup:   "Complete",
		RequiredRole: "clerk",
	})
	builder.AddStatus(StatusDescriptor{
		Code:         "Rejected",
		Label:        "Rejected",
		Color:        "#f44336",
		StageGroup:   "Complete",
		RequiredRole: "manager",
	})
	builder.AddStatus(StatusDescriptor{
		Code:       "Cancelled",
		Label:      "Cancelled",
		Color:      "#795548",
		StageGroup: "Complete",
	})

	definition, err := builder.Build()
	require.NoError(t, err)

	return definition
}

// TestingRoles orders the fixture roles viewer < clerk < manager < admin.
func TestingRoles() RoleComparator {
	rank := map[Role]int{
		"viewer":  1,
		"clerk":   2,
		"manager": 3,
		"admin":   4,
	}

	return RoleComparatorFunc(func(actor, required Role) bool {
		return rank[actor] >= rank[required]
	})
}

func ptrFloat(f float64) *float64 { return &f }

func ptrInt(i int64) *int64 { return &i }

// TestingRecords returns three purchase orders in insertion order.
func TestingRecords(t testing.TB) []Record {
	return []Record{
		{
			ID:               "PO-1",
			Date:             Date{Year: 2024, Month: time.March, Day: 1},
			Status:           "Draft",
			CounterpartyName: "Coats India Pvt Ltd",
			Amount:           ptrFloat(12500),
			ItemCount:        ptrInt(3),
		},
		{
			ID:               "PO-2",
			Date:             Date{Year: 2024, Month: time.March, Day: 11},
			Status:           "Approved",
			CounterpartyName: "Madura Mills",
			Amount:           ptrFloat(8400.50),
			ItemCount:        ptrInt(2),
		},
		{
			ID:               "PO-3",
			Date:             Date{Year: 2024, Month: time.March, Day: 18},
			Status:           "Partial",
			CounterpartyName: "Vardhman Textiles",
			Amount:           ptrFloat(21000),
			ItemCount:        ptrInt(5),
		},
	}
}
