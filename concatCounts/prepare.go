package main

import (
	"fmt"

	simple_util "github.com/liserjrqlxue/simple-util"
)

// parseInput lists samples from positional count files followed by sample sheet entries
func parseInput(countFiles []string, list string) (samples []Sample, err error) {
	for _, path := range countFiles {
		samples = append(samples, Sample{sampleID: SampleName(path), path: path})
	}
	if list == "" {
		return samples, nil
	}
	if !simple_util.FileExists(list) {
		return nil, fmt.Errorf("sample list not found: %s", list)
	}
	inputInfo, title := simple_util.File2MapArray(list, "\t", nil)
	if !hasColumns(title, "sampleID", "path") {
		return nil, fmt.Errorf("sample list %s: need sampleID and path columns, got %v", list, title)
	}
	for _, item := range inputInfo {
		var sample = Sample{sampleID: item["sampleID"], path: item["path"]}
		if sample.sampleID == "" {
			sample.sampleID = SampleName(sample.path)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

func hasColumns(title []string, keys ...string) bool {
	var seen = make(map[string]bool)
	for _, key := range title {
		seen[key] = true
	}
	for _, key := range keys {
		if !seen[key] {
			return false
		}
	}
	return true
}
