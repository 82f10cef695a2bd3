package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/ledger"
	"github.com/ledgerline-dev/ledgerline/internal/ratio"
	"github.com/ledgerline-dev/ledgerline/internal/store"
)

func newRatiosCommand() *cobra.Command {
	var dir string
	var from, to string

	cmd := &cobra.Command{
		Use:   "ratios",
		Short: "Financial ratios over a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}

			r, err := parseRange(from, to)
			if err != nil {
				return err
			}

			// The closing balance sheet needs full history; the income
			// statement only the period.
			allEntries, err := e.entriesIn(ledger.DateRange{From: store.YearRange(1900).From, To: r.To})
			if err != nil {
				return err
			}

			closing, err := e.gen.BalanceSheet(e.chart.All(), allEntries, r.To)
			if err != nil {
				return err
			}

			opening, err := e.gen.BalanceSheet(e.chart.All(), allEntries, r.From.AddDate(0, 0, -1))
			if err != nil {
				return err
			}

			is, err := e.gen.IncomeStatement(e.chart.All(), allEntries, r.From, r.To)
			if err != nil {
				return err
			}

			set := ratio.Compute(closing, is, ratio.Options{Opening: &opening})

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Ratios %s to %s\t\n", r.From.Format(dateFormat), r.To.Format(dateFormat))
			fmt.Fprintf(w, "Current Ratio\t%s\n", set.CurrentRatio)
			fmt.Fprintf(w, "Quick Ratio\t%s\n", set.QuickRatio)
			fmt.Fprintf(w, "Cash Ratio\t%s\n", set.CashRatio)
			fmt.Fprintf(w, "Gross Margin\t%s\n", set.GrossMargin)
			fmt.Fprintf(w, "Operating Margin\t%s\n", set.OperatingMargin)
			fmt.Fprintf(w, "Net Margin\t%s\n", set.NetMargin)
			fmt.Fprintf(w, "Return on Assets\t%s\n", set.ReturnOnAssets)
			fmt.Fprintf(w, "Return on Equity\t%s\n", set.ReturnOnEquity)
			fmt.Fprintf(w, "Asset Turnover\t%s\n", set.AssetTurnover)
			fmt.Fprintf(w, "Inventory Turnover\t%s\n", set.InventoryTurnover)
			fmt.Fprintf(w, "Debt to Equity\t%s\n", set.DebtToEquity)
			fmt.Fprintf(w, "Debt to Assets\t%s\n", set.DebtToAssets)
			fmt.Fprintf(w, "Interest Coverage\t%s\n", set.InterestCoverage)
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&from, "from", "", "period start YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "period end YYYY-MM-DD")

	return cmd
}
