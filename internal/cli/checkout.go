package cli

import (
	"fmt"
	"io"

	"github.com/SscSPs/mobilepos_backend/internal/core/domain"
	"github.com/SscSPs/mobilepos_backend/internal/utils"
	"github.com/SscSPs/mobilepos_backend/internal/utils/tender"
	"github.com/spf13/cobra"
)

func newCheckoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Reconcile dual-currency tender offline",
	}
	cmd.AddCommand(newCheckoutQuoteCommand())
	return cmd
}

type quoteOptions struct {
	total    string
	rate     string
	usd      string
	ves      string
	credit   bool
	customer string
	output   string
}

func newCheckoutQuoteCommand() *cobra.Command {
	opts := quoteOptions{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute the remaining balance or change for a tender",
		Example: `  posctl checkout quote --total 100 --rate 40 --usd 30 --ves 1000
  posctl checkout quote --total 50 --rate 36.5 --usd 20 --credit --customer "Ana"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.output); err != nil {
				return err
			}
			quote, err := buildQuote(opts)
			if err != nil {
				return err
			}
			if opts.output == formatText {
				printQuote(cmd.OutOrStdout(), quote)
				return nil
			}
			return encode(cmd.OutOrStdout(), opts.output, quote)
		},
	}
	cmd.Flags().StringVar(&opts.total, "total", "", "Total due in USD")
	cmd.Flags().StringVar(&opts.rate, "rate", "", "Exchange rate in Bs per USD")
	cmd.Flags().StringVar(&opts.usd, "usd", "0", "Amount tendered in USD")
	cmd.Flags().StringVar(&opts.ves, "ves", "0", "Amount tendered in Bs")
	cmd.Flags().BoolVar(&opts.credit, "credit", false, "Record the unpaid balance as customer credit")
	cmd.Flags().StringVar(&opts.customer, "customer", "", "Customer name, required for credit sales")
	cmd.Flags().StringVarP(&opts.output, "output", "o", formatText, "Output format: text, json or yaml")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("rate")
	return cmd
}

func buildQuote(opts quoteOptions) (domain.CheckoutQuote, error) {
	total := tender.ParseAmount(opts.total)
	rate := tender.ParseAmount(opts.rate)
	session, err := tender.Open(total, rate)
	if err != nil {
		return domain.CheckoutQuote{}, fmt.Errorf("invalid rate %q: %w", opts.rate, err)
	}
	if err := session.SetPrimary(opts.usd); err != nil {
		return domain.CheckoutQuote{}, err
	}
	if err := session.SetSecondary(opts.ves); err != nil {
		return domain.CheckoutQuote{}, err
	}

	result := session.Result()
	return domain.CheckoutQuote{
		ExchangeRate:   rate,
		Tender:         session.Tender(),
		Reconciliation: result,
		State:          session.StateFor(opts.credit, opts.customer),
		CanConfirm:     tender.CanConfirm(result, opts.credit, opts.customer),
	}, nil
}

func printQuote(w io.Writer, q domain.CheckoutQuote) {
	r := q.Reconciliation
	fmt.Fprintf(w, "Total:     %s / %s\n", utils.FormatPrimary(r.TotalDuePrimary), utils.FormatSecondary(r.TotalDueSecondary))
	fmt.Fprintf(w, "Paid:      %s\n", utils.FormatPrimary(r.TotalPaidPrimary))

	switch {
	case r.IsChange:
		primary, secondary := r.Change()
		fmt.Fprintf(w, "Change:    %s / %s\n", utils.FormatPrimary(primary), utils.FormatSecondary(secondary))
	case r.IsComplete:
		fmt.Fprintln(w, "Paid in full")
	default:
		fmt.Fprintf(w, "Remaining: %s / %s\n", utils.FormatPrimary(r.RemainingPrimary), utils.FormatSecondary(r.RemainingSecondary))
	}
	fmt.Fprintf(w, "State:     %s (confirmable: %t)\n", q.State, q.CanConfirm)
}
