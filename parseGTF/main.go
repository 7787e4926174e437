package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/rnaseqTools/util"
)

var (
	input = flag.String(
		"input",
		"",
		"a GTF file, .gz allowed",
	)
	output = flag.String(
		"output",
		"",
		"output gene_id to gene_name table",
	)
	feature = flag.String(
		"feature",
		"gene",
		"feature type (column 3) to extract",
	)
)

func init() {
	flag.StringVar(input, "i", "", "a GTF file, .gz allowed (shorthand)")
	flag.StringVar(output, "o", "", "output gene_id to gene_name table (shorthand)")
}

// Config is built once from the command line and never changed afterwards
type Config struct {
	Input   string
	Output  string
	Feature string
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime)
	log.Printf("Start:%+v", os.Args)
	flag.Parse()
	var cfg = newConfig()
	if cfg.Input == "" || cfg.Output == "" {
		flag.Usage()
		log.Fatal("-i/-o required!")
	}

	stats, err := run(cfg, os.Stdout)
	simpleUtil.CheckErr(err)
	log.Printf("lines:%d\tcomments:%d\t%s:%d\temitted:%d", stats.Lines, stats.Comments, cfg.Feature, stats.Features, stats.Genes)
}

func newConfig() Config {
	return Config{
		Input:   *input,
		Output:  *output,
		Feature: *feature,
	}
}

// run writes the mapping and reports completion on stdout
func run(cfg Config, stdout io.Writer) (stats Stats, err error) {
	in, err := util.Open(cfg.Input)
	if err != nil {
		return
	}
	defer simpleUtil.DeferClose(in)

	out, err := os.Create(cfg.Output)
	if err != nil {
		return
	}
	defer simpleUtil.DeferClose(out)

	stats, err = Extract(in, out, cfg.Feature)
	if err != nil {
		return stats, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	_, err = fmt.Fprintf(stdout, "Extraction complete. Output saved to %s\n", cfg.Output)
	return
}
