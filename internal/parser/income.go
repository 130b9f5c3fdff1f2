package parser

import (
	"strings"

	"github.com/osmanekinci26/cashguardtr/internal/mapping"
	"github.com/osmanekinci26/cashguardtr/internal/model"
	"github.com/osmanekinci26/cashguardtr/internal/normalize"
)

// incomeResult carries the line items extracted from a flexible income sheet.
type incomeResult struct {
	Statement model.CanonicalStatement
	Year      int
	Obs       []model.LineItemObservation
	Unmapped  []string
}

// parseIncomeSheet reads label/value pairs from the detected columns. With a
// header row, data starts below it; headerless content layouts scan from the
// top and skip rows whose value cell is not numeric.
func parseIncomeSheet(sheet string, rows [][]string, layout *IncomeLayout, mapper *mapping.Mapper) *incomeResult {
	res := &incomeResult{
		Statement: model.CanonicalStatement{},
		Year:      layout.Year,
	}

	start := layout.HeaderRow + 1
	if layout.HeaderRow < 0 {
		start = 0
	}

	emptyRun := 0
	for r := start; r < len(rows); r++ {
		label := strings.TrimSpace(cellAt(rows, r, layout.LabelCol))
		value := ClassifyCell(cellAt(rows, r, layout.ValueCol))
		if label == "" && value.Kind == CellEmpty {
			emptyRun++
			if emptyRun >= emptyStreakLimit {
				break
			}
			continue
		}
		emptyRun = 0
		if label == "" || value.Kind != CellNumber {
			continue
		}

		entry := model.LineItemObservation{
			Sheet:      sheet,
			Row:        r + 1,
			RawLabel:   label,
			Normalized: normalize.Normalize(label),
			Value:      value.Number,
		}
		key, ok := mapper.MapLabel(label)
		if ok {
			entry.ResolvedKey = key
			res.Statement.Add(key, value.Number)
		} else {
			res.Unmapped = append(res.Unmapped, label)
		}
		res.Obs = append(res.Obs, entry)
	}
	return res
}
