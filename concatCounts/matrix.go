package main

import (
	"encoding/csv"
	"io"
	"strconv"
)

// Merge outer joins tables on feature ID.
// Rows follow first appearance across tables, columns follow tables.
func Merge(tables ...*CountTable) *Matrix {
	var (
		matrix  = &Matrix{}
		rowIdx  = make(map[string]int)
		nSample = len(tables)
	)
	for j, table := range tables {
		matrix.Samples = append(matrix.Samples, table.SampleID)
		for _, feature := range table.Features {
			i, ok := rowIdx[feature]
			if !ok {
				i = len(matrix.Features)
				rowIdx[feature] = i
				matrix.Features = append(matrix.Features, feature)
				matrix.Counts = append(matrix.Counts, make([]uint64, nSample))
				matrix.Present = append(matrix.Present, make([]bool, nSample))
			}
			matrix.Counts[i][j] = table.Counts[feature]
			matrix.Present[i][j] = true
		}
	}
	return matrix
}

// Cell returns the formatted count of feature i in sample j, "" if absent
func (matrix *Matrix) Cell(i, j int) string {
	if !matrix.Present[i][j] {
		return ""
	}
	return strconv.FormatUint(matrix.Counts[i][j], 10)
}

// WriteCSV writes a blank index label plus sample names, then one row per feature
func (matrix *Matrix) WriteCSV(w io.Writer) error {
	var writer = csv.NewWriter(w)
	var record = make([]string, len(matrix.Samples)+1)
	copy(record[1:], matrix.Samples)
	if err := writer.Write(record); err != nil {
		return err
	}
	for i, feature := range matrix.Features {
		record[0] = feature
		for j := range matrix.Samples {
			record[j+1] = matrix.Cell(i, j)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
