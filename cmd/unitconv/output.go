// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvunits/magnitude"
	"github.com/katalvlaran/lvunits/unit"
)

// unitRecord is the serialized form of a unit.
type unitRecord struct {
	Symbol    string `yaml:"symbol"`
	Name      string `yaml:"name,omitempty"`
	Kind      string `yaml:"kind,omitempty"`
	Dimension string `yaml:"dimension"`
	Magnitude string `yaml:"magnitude"`
	System    string `yaml:"system,omitempty"`
}

func newUnitRecord(u unit.Unit) unitRecord {
	return unitRecord{
		Symbol:    u.String(),
		Name:      u.Name(),
		Kind:      u.Kind(),
		Dimension: u.Dimension().String(),
		Magnitude: u.Magnitude().String(),
	}
}

// factorRecord describes an exact conversion factor.
type factorRecord struct {
	From     string  `yaml:"from"`
	To       string  `yaml:"to"`
	Exact    string  `yaml:"exact"`
	Value    float64 `yaml:"value"`
	Rational bool    `yaml:"rational"`
}

func newFactorRecord(from, to unit.Unit, f magnitude.Magnitude) factorRecord {
	return factorRecord{
		From:     from.String(),
		To:       to.String(),
		Exact:    f.String(),
		Value:    f.Float64(),
		Rational: magnitude.IsRational(f),
	}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func writeLine(w io.Writer, a ...any) error {
	_, err := fmt.Fprintln(w, a...)

	return err
}
