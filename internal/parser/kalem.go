package parser

import (
	"fmt"
	"strings"

	"github.com/osmanekinci26/cashguardtr/internal/mapping"
	"github.com/osmanekinci26/cashguardtr/internal/model"
	"github.com/osmanekinci26/cashguardtr/internal/normalize"
)

// kalemResult carries the statement lines extracted from one legacy sheet,
// split by statement target.
type kalemResult struct {
	Balance  model.CanonicalStatement
	Income   model.CanonicalStatement
	Year     int
	Obs      []model.LineItemObservation
	Unmapped []string
}

// parseKalemSheet walks every detected KALEM block. The sheet name decides the
// statement target: names containing "gelir" feed the income statement, the
// rest feed the balance sheet. Blocks without a year column are rejected up
// front; the legacy format always dates its value columns.
func parseKalemSheet(sheet string, rows [][]string, blocks []KalemBlock, mapper *mapping.Mapper) (*kalemResult, error) {
	var usable []KalemBlock
	for _, b := range blocks {
		if b.ValueCol >= 0 {
			usable = append(usable, b)
		}
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("sheet %q: KALEM header found but no year columns", sheet)
	}

	res := &kalemResult{
		Balance: model.CanonicalStatement{},
		Income:  model.CanonicalStatement{},
	}
	toIncome := strings.Contains(normalize.Normalize(sheet), "gelir")
	target := res.Balance
	if toIncome {
		target = res.Income
	}

	for _, b := range usable {
		if b.Year > res.Year {
			res.Year = b.Year
		}
		parseKalemBlock(sheet, rows, b, mapper, target, res)
	}
	return res, nil
}

func parseKalemBlock(sheet string, rows [][]string, b KalemBlock, mapper *mapping.Mapper, target model.CanonicalStatement, res *kalemResult) {
	emptyRun := 0
	for r := b.HeaderRow + 1; r < b.EndRow && r < len(rows); r++ {
		label := strings.TrimSpace(cellAt(rows, r, b.LabelCol))
		value := ClassifyCell(cellAt(rows, r, b.ValueCol))
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
			target.Add(key, value.Number)
		} else {
			res.Unmapped = append(res.Unmapped, label)
		}
		res.Obs = append(res.Obs, entry)
	}
}
