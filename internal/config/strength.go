package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/xuri/excelize/v2"

	"pitch/internal/bot"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported bid strength file format")
	ErrMissingColumn     = errors.New("bid strength table needs rank and strength columns")
	ErrEmptyTable        = errors.New("bid strength table has no rows")
	ErrBadRow            = errors.New("invalid bid strength row")
	ErrNoSheet           = errors.New("worksheet not found")
)

// LoadStrengthTable reads a rank/strength table, falling back to the
// default table with a warning when the source cannot be used.
func LoadStrengthTable(path string, sheet SheetRef, logger runtime.Logger) bot.StrengthTable {
	table, err := ReadStrengthTable(path, sheet)
	if err != nil {
		logger.Warn("LoadStrengthTable: could not load bid strength file %s: %v; using default bid strength values", path, err)
		return bot.DefaultStrengthTable()
	}
	return table
}

// ReadStrengthTable reads a .csv or .xlsx table with "rank" and "strength"
// columns. Ranks the source does not mention keep their default weight.
func ReadStrengthTable(path string, sheet SheetRef) (bot.StrengthTable, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		rows, err = readCSV(path)
	case ".xlsx", ".xlsm":
		rows, err = readXLSX(path, sheet)
	default:
		return bot.StrengthTable{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return bot.StrengthTable{}, err
	}
	return parseStrengthRows(rows)
}

func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

func readXLSX(path string, sheet SheetRef) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := string(sheet)
	if idx, ok := sheet.Index(); ok {
		sheets := f.GetSheetList()
		if idx < 0 || idx >= len(sheets) {
			return nil, fmt.Errorf("%w: index %d of %d", ErrNoSheet, idx, len(sheets))
		}
		name = sheets[idx]
	}
	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrNoSheet, name, err)
	}
	return rows, nil
}

func parseStrengthRows(rows [][]string) (bot.StrengthTable, error) {
	if len(rows) == 0 {
		return bot.StrengthTable{}, ErrEmptyTable
	}
	rankCol, strengthCol := -1, -1
	for i, h := range rows[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "rank":
			rankCol = i
		case "strength":
			strengthCol = i
		}
	}
	if rankCol < 0 || strengthCol < 0 {
		return bot.StrengthTable{}, fmt.Errorf("%w: header %v", ErrMissingColumn, rows[0])
	}

	table := bot.DefaultStrengthTable()
	n := 0
	for line, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		rank, strength, err := parseStrengthRow(row, rankCol, strengthCol)
		if err != nil {
			return bot.StrengthTable{}, fmt.Errorf("%w %d: %v", ErrBadRow, line+2, err)
		}
		table[rank] = strength
		n++
	}
	if n == 0 {
		return bot.StrengthTable{}, ErrEmptyTable
	}
	return table, nil
}

func parseStrengthRow(row []string, rankCol, strengthCol int) (int, float64, error) {
	if rankCol >= len(row) || strengthCol >= len(row) {
		return 0, 0, errors.New("missing cell")
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(row[rankCol]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("rank %q: %w", row[rankCol], err)
	}
	if r != math.Trunc(r) || r < 0 || int(r) >= len(bot.StrengthTable{}) {
		return 0, 0, fmt.Errorf("rank %v out of range 0-17", r)
	}
	s, err := strconv.ParseFloat(strings.TrimSpace(row[strengthCol]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("strength %q: %w", row[strengthCol], err)
	}
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return 0, 0, fmt.Errorf("strength %q is not finite", row[strengthCol])
	}
	return int(r), s, nil
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
