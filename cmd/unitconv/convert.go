// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvunits/unit"
)

type convertResult struct {
	Input  string `yaml:"input"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Result string `yaml:"result"`
	Exact  bool   `yaml:"exact"`
}

func newConvertCommand(o *rootOptions) *cobra.Command {
	var integral bool

	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Express VALUE given in FROM in the unit TO",
		Long: heredoc.Doc(`
			Convert a value between two convertible units.

			By default the value is a float and the result is rounded once. With
			--integral the value is an integer and the conversion must be exact:
			3 ft is 36 in, while 1 m in km is rejected.
		`),
		Example: heredoc.Doc(`
			unitconv convert 1 km m
			unitconv convert --integral 3 ft in
			unitconv -o yaml convert 26.2 mi km
		`),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runConvert(args[0], args[1], args[2], integral)
		},
	}
	cmd.Flags().BoolVar(&integral, "integral", false, "require an exact integer result")

	return cmd
}

func (o *rootOptions) runConvert(value, fromSym, toSym string, integral bool) error {
	from, err := o.cat.Lookup(fromSym)
	if err != nil {
		return err
	}
	to, err := o.cat.Lookup(toSym)
	if err != nil {
		return err
	}

	res := convertResult{Input: value, From: from.String(), To: to.String(), Exact: integral}
	if integral {
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("integral value: %w", err)
		}
		r, err := unit.Convert(v, from, to)
		if err != nil {
			return err
		}
		res.Result = strconv.FormatInt(r, 10)
	} else {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("value: %w", err)
		}
		r, err := unit.Convert(v, from, to)
		if err != nil {
			return err
		}
		res.Result = formatFloat(r)
	}
	o.log.WithField("from", res.From).WithField("to", res.To).Debug("converted")

	if o.output == outputYAML {
		return writeYAML(o.out, res)
	}

	return writeLine(o.out, res.Result, res.To)
}
