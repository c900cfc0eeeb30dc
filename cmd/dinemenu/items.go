package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	dinemenu "github.com/kailas-cloud/dinemenu/pkg/sdk"
)

func newItemsCmd(opts *rootOptions) *cobra.Command {
	var (
		category string
		query    string
		asJSON   bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List menu items, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, err := opts.client(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			if refresh {
				if _, err := client.Refresh(ctx); err != nil {
					return err
				}
			}

			page, err := client.Browse(ctx, category, query)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(page)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCODE\tNAME\tCATEGORY\tKITCHEN\tBASE RATE\tRATES")
			for _, e := range page.Items {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
					e.ID, e.Code, e.Name, e.DisplayCategory, e.Kitchen,
					dinemenu.FormatRate(e.Rate), formatRates(e.Rates))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(out, "\n%d of %d items\n", page.Matched, page.Total)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&category, "category", "c", dinemenu.AllCategories, "only items in this category")
	f.StringVarP(&query, "query", "q", "", "search item name, code, category and kitchen")
	f.BoolVar(&asJSON, "json", false, "print the result as JSON")
	f.BoolVar(&refresh, "refresh", false, "fetch from the source, bypassing the cache")
	return cmd
}

func formatRates(rates []dinemenu.RateEntry) string {
	parts := make([]string, 0, len(rates))
	for _, r := range rates {
		parts = append(parts, r.Label+" "+dinemenu.FormatRate(r.Value))
	}
	return strings.Join(parts, ", ")
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List menu categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, err := opts.client(ctx)
			if err != nil {
				return err
			}
			defer client.Close()

			cats, err := client.Categories(ctx)
			if err != nil {
				return err
			}
			for _, c := range cats {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}
