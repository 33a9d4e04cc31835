package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/sortiz4/muon/el"
	"github.com/spf13/cobra"
)

func tagsCmd() *cobra.Command {
	var voidOnly bool

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the registered HTML tags",
		Long:  `List every registered tag with its constructor name and whether it is void.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TAG\tCONSTRUCTOR\tVOID")
			for _, d := range el.Tags() {
				if voidOnly && !d.Void {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%v\n", d.Tag, d.Name, d.Void)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&voidOnly, "void", false, "List only void elements")

	return cmd
}
