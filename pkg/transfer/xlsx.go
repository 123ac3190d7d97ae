package transfer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"chili/entities"
	"chili/pkg/chili/service"
)

const sheetName = "Records"

func ExportXLSX(w io.Writer, records []entities.Chili) error {
	x := excelize.NewFile()
	defer x.Close()

	idx, err := x.NewSheet(sheetName)
	if err != nil {
		return err
	}
	x.SetActiveSheet(idx)
	if err := x.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	writeRow := func(row int, cells []string) error {
		for col, v := range cells {
			name, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := x.SetCellValue(sheetName, name, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := writeRow(1, Columns); err != nil {
		return err
	}
	for i, c := range records {
		if err := writeRow(i+2, recordRow(c)); err != nil {
			return err
		}
	}
	return x.Write(w)
}

// ParseXLSX reads the exchange schema from the first sheet of a workbook.
func ParseXLSX(r io.Reader) ([]service.ChiliInput, []service.RowError, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return nil, nil, err
	}
	return rowsToInputs(rows)
}
