package xlsxport

import (
	"io"

	"github.com/xuri/excelize/v2"

	dashboard "github.com/sauravaggarwalcfd/CCPL-GOOGLE-ERP-sub004"
)

// Export writes a table projection to an xlsx workbook: one sheet, a bold
// header row from the projection's columns, then one row per record.
func Export(projection dashboard.TableProjection, sheetName string) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	for i, column := range projection.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}

		if err := f.SetCellValue(sheetName, cell, column.Title); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for rowIdx, record := range projection.Rows {
		for colIdx, column := range projection.Columns {
			value, err := record.ColumnValue(column.Key)
			if err != nil {
				return nil, err
			}

			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}

			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if sheetName != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Write exports the projection and writes the workbook to w.
func Write(w io.Writer, projection dashboard.TableProjection, sheetName string) error {
	f, err := Export(projection, sheetName)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Write(w)
}
