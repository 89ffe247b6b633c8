// SPDX-License-Identifier: MIT

// Command pmconv reads one position matrix from a table file, completes the
// PFM/PPM/PWM triple and prints the requested sections as TSV.
//
//	pmconv --kind pfm --alphabet DNA --show ppm,consensus,ic motif.tsv
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/katalvlaran/seqmotif/pm"
	"github.com/katalvlaran/seqmotif/tabfile"
)

var (
	INFO *log.Logger
	WARN *log.Logger
)

func main() {
	// Register loggers. Stdout carries the tables.
	INFO = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WARN = log.New(os.Stderr, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)

	if err := run(os.Args[1:], os.Stdout); err != nil {
		WARN.Println(err)
		os.Exit(1)
	}
}

// newApp declares the command line and binds it to cfg.
func newApp(cfg *config, configPath *string) *kingpin.Application {
	app := kingpin.New("pmconv", "Convert a sequence motif between PFM, PPM and PWM and summarize it")
	app.Version("v0.1")

	app.Arg("matrix-file", "delimited table holding the input matrix").Required().StringVar(&cfg.file)
	app.Flag(keyKind, "kind of the input matrix: pfm, ppm or pwm").Short('k').
		Default("pfm").IsSetByUser(cfg.setByUser[keyKind]).StringVar(&cfg.kind)
	app.Flag(keyAlphabet, "alphabet type, e.g. DNA, RNA, AA, custom").Short('a').
		Default(string(pm.DefaultAlphabetType)).IsSetByUser(cfg.setByUser[keyAlphabet]).StringVar(&cfg.alphabet)
	app.Flag(keySymbols, "symbols of a custom alphabet, or column relabelling").
		Default("").IsSetByUser(cfg.setByUser[keySymbols]).StringVar(&cfg.symbols)
	app.Flag(keyBackground, "background probability; repeat once per symbol, or give once for all").
		IsSetByUser(cfg.setByUser[keyBackground]).Float64ListVar(&cfg.background)
	app.Flag(keyPseudocount, "offset added before the log2 transform").
		Default(fmt.Sprint(pm.DefaultPseudocount)).IsSetByUser(cfg.setByUser[keyPseudocount]).Float64Var(&cfg.pseudocount)
	app.Flag(keyCanonical, "kind consensus and weights are read from").
		Default(pm.DefaultCanonical.String()).IsSetByUser(cfg.setByUser[keyCanonical]).StringVar(&cfg.canonical)
	app.Flag(keyShow, "comma-separated sections: "+strings.Join(sections, ",")).
		Default(strings.Join(sections, ",")).IsSetByUser(cfg.setByUser[keyShow]).StringVar(&cfg.show)
	app.Flag("config", "YAML/JSON/TOML file supplying the same keys; flags win").Short('c').
		Default("").StringVar(configPath)

	return app
}

// run is main without the process exit.
func run(args []string, stdout io.Writer) error {
	cfg := newConfig()
	var configPath string
	app := newApp(cfg, &configPath)
	if _, err := app.Parse(args); err != nil {
		return err
	}

	if configPath != "" {
		if err := cfg.merge(configPath); err != nil {
			return err
		}
		logf(INFO, "config %s merged", configPath)
	}

	show, err := cfg.sectionList()
	if err != nil {
		return err
	}
	kind, opts, err := cfg.options()
	if err != nil {
		return err
	}

	set, err := pm.NewMatrixSet(opts...)
	if err != nil {
		return err
	}
	var in pm.Inputs
	switch kind {
	case pm.Frequency:
		in.PFM = pm.FilePath(cfg.file)
	case pm.Probability:
		in.PPM = pm.FilePath(cfg.file)
	case pm.Weight:
		in.PWM = pm.FilePath(cfg.file)
	}
	if err = set.Reconcile(in); err != nil {
		return err
	}
	logf(INFO, "%s: %s, width %d, background %s", cfg.file, set.Alphabet(), set.Width(), set.Background())

	return report(stdout, set, show)
}

// report prints each requested section as a titled TSV block.
func report(w io.Writer, set *pm.MatrixSet, show []string) error {
	for _, name := range show {
		if _, err := fmt.Fprintf(w, "# %s\n", name); err != nil {
			return err
		}
		var err error
		switch name {
		case "consensus":
			_, err = fmt.Fprintln(w, set.Consensus())
		case "ic":
			err = tabfile.Write(w, []string{"bits"}, column(set.IC()))
		case "weight":
			err = tabfile.Write(w, []string{"weight"}, column(set.Weight()))
		default:
			k, _ := pm.ParseKind(name)
			err = tabfile.Write(w, set.Labels(), set.Matrix(k).Rows())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func column(v []float64) [][]float64 {
	out := make([][]float64, len(v))
	for i, x := range v {
		out[i] = []float64{x}
	}
	return out
}

// logf tolerates nil loggers so run can be driven from tests.
func logf(l *log.Logger, format string, args ...any) {
	if l != nil {
		l.Printf(format, args...)
	}
}
