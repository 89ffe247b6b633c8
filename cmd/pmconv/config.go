// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/seqmotif/alphabet"
	"github.com/katalvlaran/seqmotif/pm"
)

// Config keys shared by flags and the config file.
const (
	keyKind        = "kind"
	keyAlphabet    = "alphabet"
	keySymbols     = "symbols"
	keyBackground  = "background"
	keyPseudocount = "pseudocount"
	keyCanonical   = "canonical"
	keyShow        = "show"
)

// Every section pmconv can print, in print order.
var sections = []string{"pfm", "ppm", "pwm", "consensus", "ic", "weight"}

// config is the merged command configuration.
type config struct {
	file        string
	kind        string
	alphabet    string
	symbols     string
	background  []float64
	pseudocount float64
	canonical   string
	show        string

	// setByUser records which keys came from the command line.
	setByUser map[string]*bool
}

func newConfig() *config {
	c := &config{setByUser: make(map[string]*bool)}
	for _, k := range []string{keyKind, keyAlphabet, keySymbols, keyBackground, keyPseudocount, keyCanonical, keyShow} {
		c.setByUser[k] = new(bool)
	}
	return c
}

func (c *config) flagged(key string) bool { return *c.setByUser[key] }

// merge reads the config file at path and takes every key the command line
// left unset from it.
func (c *config) merge(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	str := func(key string, dst *string) {
		if !c.flagged(key) && v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	str(keyKind, &c.kind)
	str(keyAlphabet, &c.alphabet)
	str(keySymbols, &c.symbols)
	str(keyCanonical, &c.canonical)
	if !c.flagged(keyShow) && v.IsSet(keyShow) {
		c.show = strings.Join(v.GetStringSlice(keyShow), ",")
	}
	if !c.flagged(keyPseudocount) && v.IsSet(keyPseudocount) {
		c.pseudocount = v.GetFloat64(keyPseudocount)
	}
	if !c.flagged(keyBackground) && v.IsSet(keyBackground) {
		raw := v.GetStringSlice(keyBackground)
		bg := make([]float64, len(raw))
		for j, s := range raw {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return fmt.Errorf("config %s: background[%d]=%q: %w", path, j, s, err)
			}
			bg[j] = f
		}
		c.background = bg
	}

	return nil
}

// sectionList splits and validates the show list.
func (c *config) sectionList() ([]string, error) {
	var out []string
	for _, s := range strings.Split(c.show, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		known := false
		for _, name := range sections {
			if s == name {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown section %q, want one of %s", s, strings.Join(sections, ","))
		}
		out = append(out, s)
	}
	return out, nil
}

// options turns the config into pm options plus the kind of the input file.
func (c *config) options() (pm.Kind, []pm.Option, error) {
	kind, err := pm.ParseKind(c.kind)
	if err != nil {
		return 0, nil, err
	}
	typ, err := alphabet.ParseType(c.alphabet)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", pm.ErrConfiguration, err)
	}
	canonical, err := pm.ParseKind(c.canonical)
	if err != nil {
		return 0, nil, err
	}

	opts := []pm.Option{
		pm.WithAlphabet(typ),
		pm.WithSymbols(c.symbols),
		pm.WithCanonical(canonical),
		pm.WithPseudocount(pm.ScalarPseudocount(c.pseudocount)),
	}
	switch len(c.background) {
	case 0:
	case 1:
		opts = append(opts, pm.WithBackground(pm.UniformBackground(c.background[0])))
	default:
		opts = append(opts, pm.WithBackground(pm.VectorBackground(c.background...)))
	}

	return kind, opts, nil
}
