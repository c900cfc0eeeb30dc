package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kailas-cloud/dinemenu/internal/db/driver"
	"github.com/kailas-cloud/dinemenu/internal/domain"
	domreport "github.com/kailas-cloud/dinemenu/internal/domain/report"
	reportrepo "github.com/kailas-cloud/dinemenu/internal/repository/report"
	reportuc "github.com/kailas-cloud/dinemenu/internal/usecase/report"
)

func newSummaryCmd(opts *rootOptions) *cobra.Command {
	var seed bool

	kinds := make([]string, 0, 4)
	for _, k := range domreport.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:       "summary <" + strings.Join(kinds, "|") + ">",
		Short:     "Show a sales summary stored in the cache",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			storeCfg, ok := opts.store()
			if !ok {
				return errors.New("summary requires --valkey or --redis")
			}
			ctx := cmd.Context()

			store, err := driver.Open(storeCfg)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer store.Close()
			if err := store.WaitForReady(ctx, 10*time.Second); err != nil {
				return fmt.Errorf("connect: %w", err)
			}

			repo := reportrepo.New(store, domain.DefaultKeyPrefix, zap.NewNop())
			if seed {
				if _, err := repo.SeedFixtures(ctx); err != nil {
					return err
				}
			}

			s, err := reportuc.New(repo).Get(ctx, args[0])
			if err != nil {
				return err
			}
			return printSummary(cmd, s)
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "store the sample summaries when they are missing")
	return cmd
}

func printSummary(cmd *cobra.Command, s domreport.Summary) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, s.Title)
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	switch s.Kind {
	case domreport.Today:
		fmt.Fprintln(tw, "BILL\tUSER\tTIME\tAMOUNT")
		for _, r := range s.Rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\n", r.Label, r.User, r.Time, r.Amount)
		}
	case domreport.Item:
		fmt.Fprintln(tw, "ITEM\tQTY\tAMOUNT")
		for _, r := range s.Rows {
			fmt.Fprintf(tw, "%s\t%d\t%.2f\n", r.Label, r.Quantity, r.Amount)
		}
	default:
		fmt.Fprintln(tw, "PERIOD\tBILLS\tAMOUNT")
		for _, r := range s.Rows {
			fmt.Fprintf(tw, "%s\t%d\t%.2f\n", r.Label, r.Bills, r.Amount)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	t := s.Totals
	fmt.Fprintf(out, "\nTotal: %.2f (%d bills", t.Amount, t.Bills)
	if t.Quantity > 0 {
		fmt.Fprintf(out, ", %d items", t.Quantity)
	}
	fmt.Fprintln(out, ")")
	return nil
}
