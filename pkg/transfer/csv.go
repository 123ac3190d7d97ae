package transfer

import (
	"encoding/csv"
	"errors"
	"io"

	"chili/entities"
	"chili/pkg/chili/service"
)

func ExportCSV(w io.Writer, records []entities.Chili) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, c := range records {
		if err := cw.Write(recordRow(c)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ParseCSV reads the exchange schema from a CSV stream. The returned RowError
// slice covers rows that could not be parsed; the error return is reserved
// for stream-level problems (unreadable input, missing required columns).
func ParseCSV(r io.Reader) ([]service.ChiliInput, []service.RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate short rows, cell() guards lookups

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, err
		}
		rows = append(rows, rec)
	}
	return rowsToInputs(rows)
}
