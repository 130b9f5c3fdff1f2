// Package parser turns accountant spreadsheets into canonical financial models.
//
// A workbook may mix layouts across worksheets: TDHP trial balance exports,
// legacy "KALEM" balance/income sheets, and free-form income statements. Each
// sheet is detected and parsed independently; the results merge into one
// FinancialModel keyed by fiscal year.
package parser

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/osmanekinci26/cashguardtr/internal/mapping"
	"github.com/osmanekinci26/cashguardtr/internal/model"
	"github.com/osmanekinci26/cashguardtr/internal/tdhp"
)

// ErrUnrecognizedWorkbook means no worksheet matched any supported layout.
var ErrUnrecognizedWorkbook = errors.New("no recognized financial sheet in workbook")

// Engine parses workbooks. Safe for concurrent use; the synonym index and
// detector carry no per-parse state.
type Engine struct {
	detector *FormatDetector
	mapper   *mapping.Mapper
}

// NewEngine creates an engine with the built-in synonym index.
func NewEngine() *Engine {
	return &Engine{
		detector: NewFormatDetector(),
		mapper:   mapping.NewMapper(mapping.NewIndex()),
	}
}

// Parse opens and parses a workbook file.
func (e *Engine) Parse(path string) (*model.FinancialModel, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return e.parseWorkbook(f)
}

// ParseReader parses a workbook from a stream, e.g. an HTTP upload.
func (e *Engine) ParseReader(r io.Reader) (*model.FinancialModel, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return e.parseWorkbook(f)
}

// workbookData accumulates per-sheet results before the merge.
type workbookData struct {
	tbRows        []model.TrialBalanceRow
	balanceByYear map[int]model.CanonicalStatement
	incomeByYear  map[int]model.CanonicalStatement
	obs           []model.LineItemObservation
	unmapped      []string
	recognized    bool
}

func (e *Engine) parseWorkbook(f *excelize.File) (*model.FinancialModel, error) {
	data := &workbookData{
		balanceByYear: map[int]model.CanonicalStatement{},
		incomeByYear:  map[int]model.CanonicalStatement{},
	}

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		if err := e.parseSheet(sheet, rows, data); err != nil {
			return nil, err
		}
	}
	if !data.recognized {
		return nil, ErrUnrecognizedWorkbook
	}
	return buildModel(data), nil
}

func (e *Engine) parseSheet(sheet string, rows [][]string, data *workbookData) error {
	det := e.detector.Detect(sheet, rows)
	switch det.Kind {
	case FormatTrialBalance:
		tbRows, obs, err := parseTrialBalanceSheet(sheet, rows, det.TrialBalance)
		if err != nil {
			return err
		}
		data.tbRows = append(data.tbRows, tbRows...)
		data.obs = append(data.obs, obs...)
		data.recognized = true

	case FormatLegacyKalem:
		res, err := parseKalemSheet(sheet, rows, det.KalemBlocks, e.mapper)
		if err != nil {
			return err
		}
		mergeInto(data.balanceByYear, res.Year, res.Balance)
		mergeInto(data.incomeByYear, res.Year, res.Income)
		data.obs = append(data.obs, res.Obs...)
		data.unmapped = append(data.unmapped, res.Unmapped...)
		data.recognized = true

	case FormatFlexibleIncome:
		res := parseIncomeSheet(sheet, rows, det.Income, e.mapper)
		mergeInto(data.incomeByYear, res.Year, res.Statement)
		data.obs = append(data.obs, res.Obs...)
		data.unmapped = append(data.unmapped, res.Unmapped...)
		data.recognized = true
	}
	return nil
}

// mergeInto folds a sheet's statement into the per-year accumulator.
func mergeInto(byYear map[int]model.CanonicalStatement, year int, stmt model.CanonicalStatement) {
	if len(stmt) == 0 {
		return
	}
	acc, ok := byYear[year]
	if !ok {
		acc = model.CanonicalStatement{}
		byYear[year] = acc
	}
	for k, v := range stmt {
		acc.Add(k, v)
	}
}

// buildModel merges label-based statements with TDHP-derived fallbacks.
// Labeled values win per key; trial balance classification fills what the
// labeled sheets did not cover. The default year is the latest year any sheet
// dated; trial-balance-only workbooks stay undated.
func buildModel(data *workbookData) *model.FinancialModel {
	var tbBalance, tbIncome model.CanonicalStatement
	if len(data.tbRows) > 0 {
		buckets := tdhp.Consolidate(data.tbRows)
		tbBalance = tdhp.BalanceSheet(buckets)
		tbIncome = tdhp.IncomeStatement(buckets, data.tbRows)
	}

	defaultYear := 0
	for y := range data.balanceByYear {
		if y > defaultYear {
			defaultYear = y
		}
	}
	for y := range data.incomeByYear {
		if y > defaultYear {
			defaultYear = y
		}
	}

	m := &model.FinancialModel{
		BalanceSheetByYear:    map[string]model.CanonicalStatement{},
		IncomeStatementByYear: map[string]model.CanonicalStatement{},
		MappingLog:            data.obs,
		UnmappedLabels:        uniqueSorted(data.unmapped),
	}
	if defaultYear > 0 {
		m.DefaultYear = strconv.Itoa(defaultYear)
	}

	for y, stmt := range data.balanceByYear {
		m.BalanceSheetByYear[yearKey(y)] = stmt
	}
	for y, stmt := range data.incomeByYear {
		m.IncomeStatementByYear[yearKey(y)] = stmt
	}

	if tbBalance != nil {
		dk := yearKey(defaultYear)
		m.BalanceSheetByYear[dk] = mergeStatements(m.BalanceSheetByYear[dk], tbBalance)
		m.IncomeStatementByYear[dk] = mergeStatements(m.IncomeStatementByYear[dk], tbIncome)
	}
	return m
}

// mergeStatements overlays preferred values onto a fallback statement.
// A preferred value below the negligible epsilon does not displace a real
// fallback figure.
func mergeStatements(preferred, fallback model.CanonicalStatement) model.CanonicalStatement {
	out := fallback.Clone()
	for k, v := range preferred {
		if v.Abs().GreaterThanOrEqual(model.NegligibleEpsilon) || out.Get(k).IsZero() {
			out[k] = v
		}
	}
	return out
}

func yearKey(year int) string {
	if year <= 0 {
		return ""
	}
	return strconv.Itoa(year)
}

func uniqueSorted(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
