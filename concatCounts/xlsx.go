package main

import (
	"github.com/360EntSecGroup-Skylar/excelize/v2"
)

const sheetName = "counts"

// SaveXlsx writes the same table as WriteCSV into sheet "counts", counts as numbers
func (matrix *Matrix) SaveXlsx(path string) error {
	var f = excelize.NewFile()
	f.SetSheetName("Sheet1", sheetName)

	for j, sampleID := range matrix.Samples {
		if err := setCell(f, j+2, 1, sampleID); err != nil {
			return err
		}
	}
	for i, feature := range matrix.Features {
		var row = i + 2
		if err := setCell(f, 1, row, feature); err != nil {
			return err
		}
		for j := range matrix.Samples {
			if !matrix.Present[i][j] {
				continue
			}
			if err := setCell(f, j+2, row, matrix.Counts[i][j]); err != nil {
				return err
			}
		}
	}
	return f.SaveAs(path)
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheetName, axis, value)
}
