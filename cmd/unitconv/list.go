// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvunits/catalog"
)

func newListCommand(o *rootOptions) *cobra.Command {
	var system string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.runList(system)
		},
	}
	cmd.Flags().StringVar(&system, "system", "", "only list units of this system")

	return cmd
}

func (o *rootOptions) runList(system string) error {
	var filter catalog.System
	if system != "" {
		s, err := catalog.ParseSystem(system)
		if err != nil {
			return err
		}
		filter = s
	}

	var recs []unitRecord
	for _, e := range o.cat.Entries() {
		if filter != "" && e.System != filter {
			continue
		}
		r := newUnitRecord(e.Unit)
		r.System = string(e.System)
		recs = append(recs, r)
	}

	if o.output == outputYAML {
		return writeYAML(o.out, recs)
	}

	tw := tabwriter.NewWriter(o.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tNAME\tKIND\tDIMENSION\tMAGNITUDE\tSYSTEM")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Symbol, r.Name, r.Kind, r.Dimension, r.Magnitude, r.System)
	}

	return tw.Flush()
}
