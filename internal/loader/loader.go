package loader

import (
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ClientCourier/internal/model"
)

// Source reads client account rows from a tabular file.
type Source interface {
	Load(path string) (records []model.AccountRecord, skipped int, err error)
	Name() string
}

// ForFile picks a Source by file extension.
func ForFile(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVSource(), nil
	case ".xlsx":
		return NewXLSXSource(), nil
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .csv or .xlsx)", filepath.Ext(path))
	}
}

// Header names as they appear in the advisor's export. "0" is the
// current snapshot, "-1" the prior one.
const (
	colIdentity      = "clientIdentityNumber"
	colNickname      = "clientNickname"
	colStatus        = "clientAccountStatus"
	colInvestment    = "clientInvestment"
	colCurrency      = "clientInvestmentCurrency"
	colSourceOfFunds = "clientSourceOfFunds"
	colPhone         = "clientContactPhone"
	colValue0        = "portfolioValue0"
	colValuePrior    = "portfolioValue-1"
	colDate0         = "snapshotDate0"
	colDatePrior     = "snapshotDate-1"
	colDelta         = "delta"
)

var requiredColumns = []string{
	colIdentity, colNickname, colStatus, colInvestment, colCurrency,
	colSourceOfFunds, colPhone, colValue0, colValuePrior,
	colDate0, colDatePrior, colDelta,
}

// parseTable converts a header row plus data rows into typed records.
// A missing required column is fatal; a row that fails to parse is
// reported, skipped, and counted.
func parseTable(header []string, rows [][]string) ([]model.AccountRecord, int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, 0, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var (
		records []model.AccountRecord
		skipped int
	)
	for n, row := range rows {
		rec, err := parseRow(idx, row)
		if err != nil {
			log.Printf("[WARN] skip row %d: %v", n+2, err) // +2: 1-based, after header
			skipped++
			continue
		}
		records = append(records, rec)
	}
	return records, skipped, nil
}

func parseRow(idx map[string]int, row []string) (model.AccountRecord, error) {
	cell := func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var rec model.AccountRecord
	rec.IdentityNumber = cell(colIdentity)
	rec.Nickname = cell(colNickname)
	rec.Currency = cell(colCurrency)
	rec.SourceOfFunds = cell(colSourceOfFunds)
	rec.ContactPhone = cell(colPhone)

	status, err := strconv.Atoi(cell(colStatus))
	if err != nil {
		return rec, fmt.Errorf("account status %q: %w", cell(colStatus), err)
	}
	rec.AccountStatus = status

	if rec.Investment, err = parseAmount(cell(colInvestment)); err != nil {
		return rec, fmt.Errorf("investment: %w", err)
	}
	if rec.CurrentValue, err = parseAmount(cell(colValue0)); err != nil {
		return rec, fmt.Errorf("current value: %w", err)
	}
	if rec.PriorValue, err = parseAmount(cell(colValuePrior)); err != nil {
		return rec, fmt.Errorf("prior value: %w", err)
	}

	if rec.CurrentDate, err = parseDate(cell(colDate0)); err != nil {
		return rec, fmt.Errorf("current snapshot date: %w", err)
	}
	if rec.PriorDate, err = parseDate(cell(colDatePrior)); err != nil {
		return rec, fmt.Errorf("prior snapshot date: %w", err)
	}

	if rec.Delta, err = strconv.ParseFloat(cell(colDelta), 64); err != nil {
		return rec, fmt.Errorf("delta %q: %w", cell(colDelta), err)
	}
	return rec, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}
	// Exports sometimes carry display separators.
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount %q: %w", s, err)
	}
	return d, nil
}

// dateLayouts covers the formats seen across CSV exports and the
// strings excelize produces for date cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02 Jan 2006",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/2006",
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
