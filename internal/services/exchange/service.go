package exchange

import (
	"math"
	"strconv"

	"activityhub/internal/domain"
	"activityhub/internal/menu"
)

// Policy holds the transaction policy constants: flat fee rate and the
// accepted PHP amount bounds.
type Policy struct {
	FeeRate   float64
	MinAmount float64
	MaxAmount float64
}

// Service converts PHP to the fixed foreign currency table through its own
// sub-menu. Quotes are derived per request and never stored.
type Service struct {
	console domain.Console
	prompts domain.Prompter
	rates   []domain.RateEntry
	policy  Policy
}

// New returns the exchange activity over the given console, prompter,
// rate table and policy.
func New(c domain.Console, p domain.Prompter, rates []domain.RateEntry, policy Policy) *Service {
	return &Service{console: c, prompts: p, rates: rates, policy: policy}
}

// Name is the label the menu lists the activity under.
func (s *Service) Name() string { return "Currency Exchange Calculator" }

// Quote derives the full conversion for a gross PHP amount: fee, net, and
// one converted amount per table entry.
func (s *Service) Quote(amount float64) domain.ExchangeQuote {
	fee := amount * s.policy.FeeRate
	net := amount - fee

	converted := make([]domain.ConvertedAmount, 0, len(s.rates))
	for _, entry := range s.rates {
		converted = append(converted, domain.ConvertedAmount{
			Entry:  entry,
			Amount: net / entry.PHPPerUnit,
		})
	}
	return domain.ExchangeQuote{Gross: amount, Fee: fee, Net: net, Converted: converted}
}

// Run shows the exchange sub-menu until its exit entry is chosen.
func (s *Service) Run() error {
	m := &menu.Menu{
		Title: s.Name(),
		Lead:  "Currency Exchange Options:",
		Options: []menu.Option{
			{Label: "Exchange Currency", Run: s.convert},
			{Label: "View Rates", Run: s.viewRates},
		},
		ExitLabel: "Exit",
		ExitNotes: []string{
			"Exiting Currency Exchange Calculator...",
			"Successfully Navigated to Main Menu",
			"",
		},
	}
	return m.Run(s.console, s.prompts)
}

// convert reads an amount, discloses the fee and asks for confirmation.
// Declining aborts before any calculation.
func (s *Service) convert() error {
	amount, err := s.prompts.FloatInRange(
		"Enter amount in PHP (₱): ", s.policy.MinAmount, s.policy.MaxAmount,
	)
	if err != nil {
		return err
	}

	s.console.Sayf("A %.0f%% transaction fee will be charged for the exchange.", s.policy.FeeRate*100)
	ok, err := s.prompts.YesNo("Would you like to proceed?")
	if err != nil {
		return err
	}
	if !ok {
		s.console.Say("Transaction cancelled.")
		return s.console.Pause()
	}

	s.showQuote(s.Quote(amount))
	return s.console.Pause()
}

// showQuote prints the transaction summary and the per-currency table,
// amounts to two decimals.
func (s *Service) showQuote(q domain.ExchangeQuote) {
	s.console.Header("Conversion Result")
	s.console.Rule()
	s.console.Sayf("%-18s: ₱%.2f", "Original Amount", q.Gross)
	s.console.Sayf("%-18s: ₱%.2f", "Transaction Fee", q.Fee)
	s.console.Sayf("%-18s: ₱%.2f", "Net Amount", q.Net)

	s.console.Rule()
	s.console.Sayf("%-14s%-20s%12s", "Currency", "Rate (PHP per ₱1)", "Converted")
	for _, c := range q.Converted {
		s.console.Sayf("%-14s%-20.4f%12.2f %s", c.Entry.Label(), c.Entry.PHPPerUnit, c.Amount, c.Entry.Code)
	}
}

// viewRates shows the rate screen, then pauses.
func (s *Service) viewRates() error {
	s.ShowRates()
	return s.console.Pause()
}

// pesos renders a whole PHP policy amount with thousands separators, e.g.
// 100000 becomes "100,000". The policy bounds are whole, non-negative peso
// amounts well inside int64 range; fractional input is truncated.
func pesos(v float64) string {
	digits := strconv.FormatInt(int64(math.Trunc(v)), 10)
	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// ShowRates prints the reciprocal rate per currency, four decimals, plus
// the transaction policy constants. Rates are constants, so two views in a
// row are byte-identical. The rates subcommand calls this directly for a
// non-interactive dump.
func (s *Service) ShowRates() {
	s.console.Header("Today's Exchange Rates")
	s.console.Rule()
	for _, entry := range s.rates {
		s.console.Sayf("%-10s: 1 PHP = %.4f %s", entry.Label(), 1/entry.PHPPerUnit, entry.Code)
	}
	s.console.Rule()
	s.console.Sayf("Transaction Fee: %.0f%%", s.policy.FeeRate*100)
	s.console.Sayf("Minimum Transaction: ₱%s", pesos(s.policy.MinAmount))
	s.console.Sayf("Maximum Transaction: ₱%s", pesos(s.policy.MaxAmount))
	s.console.Rule()
}

// Compile-time assertion that Service implements domain.Activity.
var _ domain.Activity = (*Service)(nil)
