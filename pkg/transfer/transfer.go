// Package transfer moves planting records in and out of the tabular exchange
// schema shared by the CSV and spreadsheet flavors. Exported columns are
// fixed; id, owner and photo never leave the database.
package transfer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"chili/entities"
	"chili/pkg/chili/service"
)

const dateLayout = "2006-01-02"

// Columns is the exchange schema, in export order.
var Columns = []string{
	"variety",
	"planting_date",
	"seeds_planted",
	"germinated_seeds",
	"germination_date",
	"harvest_yield",
	"notes",
}

// norm canonicalizes a header cell so exports from spreadsheet tools
// round-trip (BOM, case, separator variations).
func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\ufeff") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type colIndex map[string]int

func indexHeader(head []string) colIndex {
	idx := colIndex{}
	for i, h := range head {
		idx[norm(h)] = i
	}
	return idx
}

// requireColumns checks that the mandatory part of the schema is present.
// Optional columns may be missing entirely; their values default to absent.
func requireColumns(idx colIndex) error {
	for _, c := range []string{"variety", "planting_date", "seeds_planted"} {
		if _, ok := idx[norm(c)]; !ok {
			return fmt.Errorf("missing required column %q", c)
		}
	}
	return nil
}

func cell(rec []string, idx colIndex, col string) string {
	i, ok := idx[norm(col)]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func parseRow(rec []string, idx colIndex) (service.ChiliInput, error) {
	var in service.ChiliInput
	in.Variety = cell(rec, idx, "variety")
	in.Notes = cell(rec, idx, "notes")

	pd := cell(rec, idx, "planting_date")
	if pd != "" {
		d, err := time.Parse(dateLayout, pd)
		if err != nil {
			return in, fmt.Errorf("planting_date %q: want YYYY-MM-DD", pd)
		}
		in.PlantingDate = d
	}

	sp := cell(rec, idx, "seeds_planted")
	if sp != "" {
		n, err := strconv.Atoi(sp)
		if err != nil {
			return in, fmt.Errorf("seeds_planted %q: not an integer", sp)
		}
		in.SeedsPlanted = n
	}

	if v := cell(rec, idx, "germinated_seeds"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return in, fmt.Errorf("germinated_seeds %q: not an integer", v)
		}
		in.GerminatedSeeds = &n
	}
	if v := cell(rec, idx, "germination_date"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return in, fmt.Errorf("germination_date %q: want YYYY-MM-DD", v)
		}
		in.GerminationDate = &d
	}
	if v := cell(rec, idx, "harvest_yield"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return in, fmt.Errorf("harvest_yield %q: not an integer", v)
		}
		in.HarvestYield = &n
	}
	return in, nil
}

// rowsToInputs converts raw table rows (header first) into record inputs.
// Malformed data rows are reported individually and skipped, matching the
// per-row independence of the bulk insert path.
func rowsToInputs(rows [][]string) ([]service.ChiliInput, []service.RowError, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("empty table")
	}
	idx := indexHeader(rows[0])
	if err := requireColumns(idx); err != nil {
		return nil, nil, err
	}
	var inputs []service.ChiliInput
	var failed []service.RowError
	for i, rec := range rows[1:] {
		in, err := parseRow(rec, idx)
		if err != nil {
			failed = append(failed, service.RowError{Row: i + 1, Err: err.Error()})
			continue
		}
		in.Row = i + 1
		inputs = append(inputs, in)
	}
	return inputs, failed, nil
}

func recordRow(c entities.Chili) []string {
	optInt := func(v *int) string {
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	}
	optDate := func(v *time.Time) string {
		if v == nil {
			return ""
		}
		return v.Format(dateLayout)
	}
	return []string{
		c.Variety,
		c.PlantingDate.Format(dateLayout),
		strconv.Itoa(c.SeedsPlanted),
		optInt(c.GerminatedSeeds),
		optDate(c.GerminationDate),
		optInt(c.HarvestYield),
		c.Notes,
	}
}
