package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/money"
	"github.com/ledgerline-dev/ledgerline/internal/tax"
)

var decimalHundred = decimal.NewFromInt(100)

func newTaxCommand() *cobra.Command {
	var dir string
	var year int

	cmd := &cobra.Command{
		Use:   "tax <amount>",
		Short: "Calculate tax owed on a taxable amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}

			amount, err := money.FromString(args[0], e.cfg.Ledger.Currency)
			if err != nil {
				return err
			}

			sched, ok, err := e.store.TaxSchedule(year)
			if err != nil {
				return err
			}
			if !ok {
				sched = tax.DefaultSchedule(year)
			}

			result, err := sched.Calculate(amount)
			if err != nil {
				return err
			}

			fmt.Printf("Taxable amount: %s\n", amount)
			fmt.Printf("Tax owed:       %s\n", result.Tax)
			fmt.Printf("Effective rate: %s%%\n", result.EffectiveRate.Mul(decimalHundred).StringFixed(2))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().IntVar(&year, "year", 0, "tax year (required)")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
