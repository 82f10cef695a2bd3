package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/ledger"
	"github.com/ledgerline-dev/ledgerline/internal/money"
	"github.com/ledgerline-dev/ledgerline/internal/period"
	"github.com/ledgerline-dev/ledgerline/internal/statement"
	"github.com/ledgerline-dev/ledgerline/internal/store"
)

func newReportCommand() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate financial statements",
	}
	reportCmd.AddCommand(newBalanceSheetCommand())
	reportCmd.AddCommand(newIncomeCommand())
	reportCmd.AddCommand(newCashFlowCommand())
	reportCmd.AddCommand(newTrendCommand())
	return reportCmd
}

func newBalanceSheetCommand() *cobra.Command {
	var dir string
	var asOf string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Balance sheet as of a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}

			date, err := parseDate(asOf)
			if err != nil {
				return err
			}

			// All history up to the as-of date feeds the sheet.
			entries, err := e.entriesIn(ledger.DateRange{From: store.YearRange(1900).From, To: date})
			if err != nil {
				return err
			}

			sheet, err := e.gen.BalanceSheet(e.chart.All(), entries, date)
			if err != nil {
				return err
			}

			printBalanceSheet(sheet)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&asOf, "as-of", "", "report date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("as-of")

	return cmd
}

func newIncomeCommand() *cobra.Command {
	var dir string
	var from, to string

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Income statement over a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}

			r, err := parseRange(from, to)
			if err != nil {
				return err
			}

			entries, err := e.entriesIn(r)
			if err != nil {
				return err
			}

			is, err := e.gen.IncomeStatement(e.chart.All(), entries, r.From, r.To)
			if err != nil {
				return err
			}

			printIncomeStatement(is)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&from, "from", "", "period start YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "period end YYYY-MM-DD")

	return cmd
}

func newCashFlowCommand() *cobra.Command {
	var dir string
	var from, to string
	var openingCash string
	var adjustFlags []string

	cmd := &cobra.Command{
		Use:   "cash-flow",
		Short: "Cash flow statement over a period",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}

			r, err := parseRange(from, to)
			if err != nil {
				return err
			}

			entries, err := e.entriesIn(r)
			if err != nil {
				return err
			}

			opening, err := money.FromString(openingCash, e.cfg.Ledger.Currency)
			if err != nil {
				return err
			}

			adjustments, err := parseAdjustments(adjustFlags, e.cfg.Ledger.Currency)
			if err != nil {
				return err
			}

			cf, err := e.gen.CashFlow(e.chart.All(), entries, r.From, r.To, opening, adjustments)
			if err != nil {
				return err
			}

			printCashFlow(cf)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&from, "from", "", "period start YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "period end YYYY-MM-DD")
	cmd.Flags().StringVar(&openingCash, "opening-cash", "0", "cash balance at period start")
	cmd.Flags().StringArrayVar(&adjustFlags, "adjust", nil, "non-cash adjustment as Name=Amount (repeatable)")

	return cmd
}

func newTrendCommand() *cobra.Command {
	var dir string
	var from, to string
	var granularity string

	cmd := &cobra.Command{
		Use:   "trend",
		Short: "Per-period revenue and expense trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}

			r, err := parseRange(from, to)
			if err != nil {
				return err
			}

			entries, err := e.entriesIn(r)
			if err != nil {
				return err
			}

			points, err := e.gen.Trend(e.chart.All(), entries, period.Granularity(granularity))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PERIOD\tREVENUE\tEXPENSES\tNET")
			for _, p := range points {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Key, p.Revenue, p.Expenses, p.Net)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&from, "from", "", "period start YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "period end YYYY-MM-DD")
	cmd.Flags().StringVar(&granularity, "granularity", string(period.Monthly), "daily, weekly or monthly")

	return cmd
}

func parseAdjustments(flags []string, currency string) ([]statement.Adjustment, error) {
	var adjustments []statement.Adjustment
	for _, f := range flags {
		name, amount, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("invalid adjustment %q (want Name=Amount)", f)
		}
		m, err := money.FromString(amount, currency)
		if err != nil {
			return nil, fmt.Errorf("adjustment %q: %w", name, err)
		}
		adjustments = append(adjustments, statement.Adjustment{Name: name, Amount: m})
	}
	return adjustments, nil
}

func printSection(w *tabwriter.Writer, title string, sec statement.Section) {
	fmt.Fprintf(w, "%s\t\n", title)
	for _, line := range sec.Lines {
		fmt.Fprintf(w, "  %s %s\t%s\n", line.Code, line.Name, line.Balance)
	}
	fmt.Fprintf(w, "  Total\t%s\n", sec.Total)
}

func printBalanceSheet(sheet statement.BalanceSheet) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Balance Sheet as of %s\t\n", sheet.AsOf.Format(dateFormat))
	printSection(w, "Current Assets", sheet.CurrentAssets)
	printSection(w, "Fixed Assets", sheet.FixedAssets)
	printSection(w, "Current Liabilities", sheet.CurrentLiabilities)
	printSection(w, "Long-Term Liabilities", sheet.LongTermLiabilities)
	printSection(w, "Equity", sheet.Equity)
	fmt.Fprintf(w, "Total Assets\t%s\n", sheet.TotalAssets())
	fmt.Fprintf(w, "Total Liabilities + Equity\t%s\n", add(sheet.TotalLiabilities(), sheet.TotalEquity()))
	w.Flush()

	for _, warning := range sheet.Warnings {
		fmt.Printf("WARNING: %s\n", warning)
	}
}

func printIncomeStatement(is statement.IncomeStatement) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Income Statement %s to %s\t\n", is.From.Format(dateFormat), is.To.Format(dateFormat))
	fmt.Fprintf(w, "Revenue\t%s\n", is.Revenue)
	fmt.Fprintf(w, "Cost of Goods Sold\t%s\n", is.CostOfGoodsSold)
	fmt.Fprintf(w, "Gross Profit\t%s\n", is.GrossProfit())
	fmt.Fprintf(w, "Operating Expenses\t%s\n", is.OperatingExpenses)
	fmt.Fprintf(w, "Operating Income\t%s\n", is.OperatingIncome())
	fmt.Fprintf(w, "Other Income\t%s\n", is.OtherIncome)
	fmt.Fprintf(w, "Other Expenses\t%s\n", is.OtherExpenses)
	fmt.Fprintf(w, "Interest Expense\t%s\n", is.InterestExpense)
	fmt.Fprintf(w, "Net Income\t%s\n", is.NetIncome())
	w.Flush()
}

func printCashFlow(cf statement.CashFlowStatement) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Cash Flow Statement %s to %s\t\n", cf.From.Format(dateFormat), cf.To.Format(dateFormat))
	fmt.Fprintf(w, "Net Income\t%s\n", cf.NetIncome)
	for _, adj := range cf.Adjustments {
		fmt.Fprintf(w, "  %s\t%s\n", adj.Name, adj.Amount)
	}
	fmt.Fprintf(w, "Net Cash from Operations\t%s\n", cf.NetCashFromOperations())
	printSection(w, "Investing", cf.Investing)
	printSection(w, "Financing", cf.Financing)
	fmt.Fprintf(w, "Net Change in Cash\t%s\n", cf.NetChangeInCash())
	fmt.Fprintf(w, "Beginning Cash\t%s\n", cf.BeginningCash)
	fmt.Fprintf(w, "Ending Cash\t%s\n", cf.EndingCash())
	w.Flush()
}

// add sums two same-currency report totals for display.
func add(a, b money.Money) money.Money {
	sum, err := a.Add(b)
	if err != nil {
		return a
	}
	return sum
}
