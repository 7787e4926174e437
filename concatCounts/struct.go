package main

// Sample is one column of the matrix
type Sample struct {
	sampleID string
	path     string
}

// CountTable holds one count file, feature IDs kept in file order
type CountTable struct {
	SampleID string
	Features []string
	Counts   map[string]uint64
}

// Matrix is the outer join of several CountTable on feature ID.
// Counts[i] is aligned with Features, and Counts[i][j] is valid only if Present[i][j].
type Matrix struct {
	Samples  []string
	Features []string
	Counts   [][]uint64
	Present  [][]bool
}
