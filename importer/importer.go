// Package importer turns semicolon-delimited CSV uploads into entity rows,
// one insert per record. A failing record never rolls back the records
// before it; the caller gets a per-row outcome instead of a single flag.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"trade-directory/models"
	"trade-directory/store"
)

// Delimiter used by the upstream export files.
const Delimiter = ';'

// Column sets each import expects in the header row.
var (
	ProductGroupColumns = []string{"name", "code"}
	CountryColumns      = []string{"name_russian", "name_english", "country_code"}
)

// Record is one parsed CSV row. Line is the 1-based line number in the
// uploaded file, kept for failure reporting.
type Record struct {
	Line   int
	Fields map[string]string
}

// RowFailure describes one record that could not be inserted.
type RowFailure struct {
	Line   int               `json:"line"`
	Record map[string]string `json:"record"`
	Reason string            `json:"reason"`
}

// Outcome is the aggregate result of one import call.
type Outcome struct {
	Inserted int          `json:"inserted"`
	Failures []RowFailure `json:"failures"`
}

// Parse reads a semicolon-delimited CSV stream. The first row must be a
// header containing every column in required; anything else is rejected
// with a descriptive error before any insert happens.
func Parse(r io.Reader, required []string) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty upload: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("malformed header row: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(strings.ToLower(h))] = i
	}
	for _, col := range required {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing required column %q (expected semicolon-delimited header with %s)",
				col, strings.Join(required, ", "))
		}
	}

	var records []Record
	line := 1
	for {
		row, err := cr.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed row at line %d: %w", line, err)
		}

		fields := make(map[string]string, len(required))
		for _, col := range required {
			pos := index[col]
			if pos < len(row) {
				fields[col] = strings.TrimSpace(row[pos])
			}
		}
		records = append(records, Record{Line: line, Fields: fields})
	}
	return records, nil
}

// Importer pushes parsed records through the store's create path.
type Importer struct {
	store *store.Store
}

func New(st *store.Store) *Importer {
	return &Importer{store: st}
}

// ImportProductGroups inserts one product group per record. Each insert is
// its own commit, so earlier successes survive a later duplicate.
func (im *Importer) ImportProductGroups(records []Record) Outcome {
	var out Outcome
	for _, rec := range records {
		g := models.ProductGroup{
			Name: rec.Fields["name"],
			Code: rec.Fields["code"],
		}
		if err := im.store.CreateProductGroup(&g); err != nil {
			out.Failures = append(out.Failures, failure(rec, err, fmt.Sprintf("duplicate code %q", g.Code)))
			continue
		}
		out.Inserted++
	}
	return out
}

// ImportCountries inserts one country per record.
func (im *Importer) ImportCountries(records []Record) Outcome {
	var out Outcome
	for _, rec := range records {
		c := models.Country{
			NameRussian: rec.Fields["name_russian"],
			NameEnglish: rec.Fields["name_english"],
			CountryCode: rec.Fields["country_code"],
		}
		if err := im.store.CreateCountry(&c); err != nil {
			out.Failures = append(out.Failures, failure(rec, err, "duplicate country"))
			continue
		}
		out.Inserted++
	}
	return out
}

func failure(rec Record, err error, conflictReason string) RowFailure {
	reason := err.Error()
	if errors.Is(err, store.ErrConflict) {
		reason = conflictReason
	}
	return RowFailure{Line: rec.Line, Record: rec.Fields, Reason: reason}
}
