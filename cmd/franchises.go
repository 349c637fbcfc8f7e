package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Loandr1324/InsertManagerInOrder/internal/mapper"

	"github.com/spf13/cobra"
)

var franchisesCmd = &cobra.Command{
	Use:   "franchises",
	Short: "Print worksheet titles and the effective franchise directory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd.Context(), func(a *app) error {
			view, err := a.uc.Franchises(cmd.Context())
			if err != nil {
				a.log.Errorw("franchise directory error", "error", err)
				return err
			}

			res := mapper.ToFranchisesResponse(view.Titles, view.Map)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for i, title := range res.Worksheets {
				fmt.Fprintf(w, "worksheet\t%d\t%s\n", i, title)
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "CUSTOMER CODE\tMANAGER ID")
			for _, e := range res.Franchises {
				fmt.Fprintf(w, "%s\t%s\n", e.CustomerCode, e.ManagerID)
			}
			return w.Flush()
		})
	},
}
