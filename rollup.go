package dashboard

// Rollup holds the statistics derived from the active filtered+sorted set.
// It is a pure function of the same snapshot the projections render, so the
// numbers can never disagree with what is on screen.
type Rollup struct {
	Count       int
	TotalAmount float64
	TotalItems  int64
	ByStatus    map[Status]int
	ByStage     map[StageGroup]int
}

// RollupOf computes the rollup for a record set under a definition. An
// undefined record status surfaces as ErrUnknownStatus.
func RollupOf(records []Record, definition *WorkflowDefinition) (Rollup, error) {
	rollup := Rollup{
		ByStatus: make(map[Status]int),
		ByStage:  make(map[StageGroup]int),
	}

	for _, record := range records {
		stage, err := definition.StageOf(record.Status)
		if err != nil {
			return Rollup{}, err
		}

		rollup.Count++
		rollup.ByStatus[record.Status]++
		rollup.ByStage[stage]++

		if record.Amount != nil {
			rollup.TotalAmount += *record.Amount
		}

		if record.ItemCount != nil {
			rollup.TotalItems += *record.ItemCount
		}
	}

	return rollup, nil
}
