// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvunits/unit"
)

func newFactorCommand(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "factor FROM TO",
		Short: "Print the exact factor f with value_in(TO) = value_in(FROM)·f",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runFactor(args[0], args[1])
		},
	}
}

func (o *rootOptions) runFactor(fromSym, toSym string) error {
	from, err := o.cat.Lookup(fromSym)
	if err != nil {
		return err
	}
	to, err := o.cat.Lookup(toSym)
	if err != nil {
		return err
	}
	f, err := unit.ConversionFactor(from, to)
	if err != nil {
		return err
	}

	rec := newFactorRecord(from, to, f)
	if o.output == outputYAML {
		return writeYAML(o.out, rec)
	}

	return writeLine(o.out, rec.Exact, "≈", formatFloat(rec.Value))
}
