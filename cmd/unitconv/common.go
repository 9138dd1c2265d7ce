// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvunits/unit"
)

type commonResult struct {
	Unit    unitRecord     `yaml:"unit"`
	Factors []factorRecord `yaml:"factors"`
}

func newCommonCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "common UNIT UNIT...",
		Short: "Print the largest unit every operand is a whole multiple of",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runCommon(args)
		},
	}
}

func (o *rootOptions) runCommon(symbols []string) error {
	units := make([]unit.Unit, len(symbols))
	for i, s := range symbols {
		u, err := o.cat.Lookup(s)
		if err != nil {
			return err
		}
		units[i] = u
	}
	c, err := unit.CommonUnit(units...)
	if err != nil {
		return err
	}

	res := commonResult{Unit: newUnitRecord(c)}
	for _, u := range units {
		f, err := unit.ConversionFactor(u, c)
		if err != nil {
			return err
		}
		res.Factors = append(res.Factors, newFactorRecord(u, c, f))
	}

	if o.output == outputYAML {
		return writeYAML(o.out, res)
	}
	if err := writeLine(o.out, res.Unit.Symbol); err != nil {
		return err
	}
	for _, f := range res.Factors {
		if err := writeLine(o.out, fmt.Sprintf("  1 %s = %s %s", f.From, f.Exact, f.To)); err != nil {
			return err
		}
	}

	return nil
}
