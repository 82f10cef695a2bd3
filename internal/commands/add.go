package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ledgerline-dev/ledgerline/internal/id"
	"github.com/ledgerline-dev/ledgerline/internal/ledger"
	"github.com/ledgerline-dev/ledgerline/internal/model"
	"github.com/ledgerline-dev/ledgerline/internal/money"
)

func newAddCommand() *cobra.Command {
	var dir string
	var dateFlag string
	var debitCode, creditCode string
	var amount, description, reference string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a balanced journal entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(dir)
			if err != nil {
				return err
			}

			d, err := parseDate(dateFlag)
			if err != nil {
				return err
			}

			debitAcct, ok := e.chart.GetByCode(debitCode)
			if !ok {
				return fmt.Errorf("unknown account code %q", debitCode)
			}
			creditAcct, ok := e.chart.GetByCode(creditCode)
			if !ok {
				return fmt.Errorf("unknown account code %q", creditCode)
			}

			m, err := money.FromString(amount, e.cfg.Ledger.Currency)
			if err != nil {
				return err
			}

			year, month := d.Year(), int(d.Month())
			existing, err := e.store.Entries(monthRange(year, month))
			if err != nil {
				return err
			}

			entry := model.JournalEntry{
				ID:          id.FormatEntryID(year, month, nextSequence(existing)),
				Date:        d,
				Reference:   reference,
				Description: description,
				Lines: []model.EntryLine{
					{AccountID: debitAcct.ID, Debit: m},
					{AccountID: creditAcct.ID, Credit: m},
				},
			}
			if verrs := ledger.ValidateEntries([]model.JournalEntry{entry}, e.chart, e.cfg.Ledger.Currency); len(verrs) > 0 {
				return fmt.Errorf("invalid entry: %s", verrs[0].Error())
			}

			if err := e.store.WriteMonth(year, month, append(existing, entry)); err != nil {
				return err
			}

			fmt.Printf("Recorded %s: %s, debit %s, credit %s\n", entry.ID, m, debitAcct.Code, creditAcct.Code)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVar(&dateFlag, "date", "", "entry date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&debitCode, "debit", "", "account code to debit (required)")
	cmd.Flags().StringVar(&creditCode, "credit", "", "account code to credit (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "entry amount (required)")
	cmd.Flags().StringVar(&description, "description", "", "entry description")
	cmd.Flags().StringVar(&reference, "reference", "", "entry reference")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("debit")
	_ = cmd.MarkFlagRequired("credit")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func monthRange(year, month int) ledger.DateRange {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return ledger.DateRange{From: from, To: from.AddDate(0, 1, -1)}
}

// nextSequence returns one past the highest sequence number among the
// month's existing entry IDs.
func nextSequence(entries []model.JournalEntry) int {
	next := 1
	for _, e := range entries {
		if _, _, seq, err := id.ParseEntryID(e.ID); err == nil && seq >= next {
			next = seq + 1
		}
	}
	return next
}
