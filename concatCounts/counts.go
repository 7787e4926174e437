package main

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/rnaseqTools/util"
)

// SampleName returns the base name of path up to the first "."
func SampleName(path string) string {
	return strings.Split(filepath.Base(path), ".")[0]
}

// LoadCounts reads a two-column feature ID/count file.
// Blank lines are skipped; skipHeader drops the first line.
func LoadCounts(path, sampleID string, skipHeader bool) (table *CountTable, err error) {
	file, err := util.Open(path)
	if err != nil {
		return nil, err
	}
	defer simpleUtil.DeferClose(file)

	table = &CountTable{
		SampleID: sampleID,
		Counts:   make(map[string]uint64),
	}
	var (
		scanner = bufio.NewScanner(file)
		lineNo  = 0
	)
	for scanner.Scan() {
		lineNo++
		if skipHeader && lineNo == 1 {
			continue
		}
		var line = strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		var fields = strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: expect 2 columns, got %d", path, lineNo, len(fields))
		}
		var feature = fields[0]
		if _, ok := table.Counts[feature]; ok {
			return nil, fmt.Errorf("%s:%d: duplicate feature ID %q", path, lineNo, feature)
		}
		count, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad count: %w", path, lineNo, err)
		}
		table.Features = append(table.Features, feature)
		table.Counts[feature] = count
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
