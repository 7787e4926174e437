package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
)

const defaultOutput = "gene_counts_matrix.csv"

var (
	output = flag.String(
		"output",
		defaultOutput,
		"output matrix file name",
	)
	header = flag.Bool(
		"header",
		false,
		"skip first line of each count file",
	)
	list = flag.String(
		"list",
		"",
		"sample list, tab-separated with sampleID and path columns",
	)
	xlsx = flag.String(
		"xlsx",
		"",
		"also write matrix as xlsx",
	)
)

func init() {
	flag.StringVar(output, "o", defaultOutput, "output matrix file name (shorthand)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Concatenate per-sample gene count files into a single matrix.\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] count_file [count_file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
}

// Config is built once from the command line and never changed afterwards
type Config struct {
	CountFiles []string
	Output     string
	SkipHeader bool
	List       string
	Xlsx       string
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.Printf("Start:%+v", os.Args)
	flag.Parse()
	var cfg = newConfig()
	if len(cfg.CountFiles) == 0 && cfg.List == "" {
		flag.Usage()
		log.Fatal("at least one count file required!")
	}

	simpleUtil.CheckErr(run(cfg))
	log.Printf("End")
}

func newConfig() Config {
	return Config{
		CountFiles: flag.Args(),
		Output:     *output,
		SkipHeader: *header,
		List:       *list,
		Xlsx:       *xlsx,
	}
}

func run(cfg Config) error {
	samples, err := parseInput(cfg.CountFiles, cfg.List)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no count files")
	}

	var tables = make([]*CountTable, 0, len(samples))
	for _, sample := range samples {
		table, err := LoadCounts(sample.path, sample.sampleID, cfg.SkipHeader)
		if err != nil {
			return err
		}
		log.Printf("load sample[%s]:%s\t%d features", sample.sampleID, sample.path, len(table.Features))
		tables = append(tables, table)
	}
	var matrix = Merge(tables...)

	file, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer simpleUtil.DeferClose(file)
	if err = matrix.WriteCSV(file); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	log.Printf("write matrix:%s\t%d features x %d samples", cfg.Output, len(matrix.Features), len(matrix.Samples))

	if cfg.Xlsx != "" {
		if err = matrix.SaveXlsx(cfg.Xlsx); err != nil {
			return fmt.Errorf("write %s: %w", cfg.Xlsx, err)
		}
		log.Printf("write xlsx:%s", cfg.Xlsx)
	}
	return nil
}
