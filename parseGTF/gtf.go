package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	title       = "Ensembl_ID\tGene_Name\n"
	missingName = "NA"
	gtfColumns  = 9
	maxLineSize = 16 * 1024 * 1024
)

// Stats counts what Extract saw
type Stats struct {
	Lines, Comments, Features, Genes int
}

// Extract writes one gene_id/gene_name row per record of the given feature type.
// Records lacking gene_id are skipped; a non-comment line with fewer than 9
// columns aborts with whatever has been written so far left in w.
func Extract(r io.Reader, w io.Writer, feature string) (stats Stats, err error) {
	var bw = bufio.NewWriter(w)
	if _, err = bw.WriteString(title); err != nil {
		return
	}

	var scanner = bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		stats.Lines++
		var line = scanner.Text()
		if strings.HasPrefix(line, "#") {
			stats.Comments++
			continue
		}
		var fields = strings.Split(strings.TrimSpace(line), "\t")
		if len(fields) < gtfColumns {
			bw.Flush()
			return stats, fmt.Errorf("line %d: expect %d columns, got %d", stats.Lines, gtfColumns, len(fields))
		}
		if fields[2] != feature {
			continue
		}
		stats.Features++

		var attr = ParseAttributes(fields[8])
		geneID, ok := attr["gene_id"]
		if !ok {
			continue
		}
		geneName, ok := attr["gene_name"]
		if !ok {
			geneName = missingName
		}
		if _, err = fmt.Fprintf(bw, "%s\t%s\n", geneID, geneName); err != nil {
			return
		}
		stats.Genes++
	}
	if err = scanner.Err(); err != nil {
		bw.Flush()
		return stats, fmt.Errorf("line %d: %w", stats.Lines+1, err)
	}
	err = bw.Flush()
	return
}
