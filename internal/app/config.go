package app

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"activityhub/internal/domain"
	"activityhub/internal/services/exchange"
	"activityhub/internal/services/grades"
	"activityhub/internal/services/triangle"
)

// Config holds the process-wide constant configuration plus the IO streams.
// Every value is fixed at startup; nothing here mutates at runtime.
type Config struct {
	In  io.Reader // defaults to os.Stdin
	Out io.Writer // defaults to os.Stdout
	Log zerolog.Logger

	Profile  domain.StudentProfile
	Grades   grades.Policy
	Triangle triangle.Limits
	Rates    []domain.RateEntry
	Exchange exchange.Policy
}

// DefaultConfig returns the shipped constants: the student profile, the
// 80-inclusive grading policy, the 20-row triangle cap, and the fixed
// PHP-denominated rate table with its 5% fee and transaction bounds.
func DefaultConfig() Config {
	return Config{
		In:  os.Stdin,
		Out: os.Stdout,
		Log: zerolog.Nop(),

		Profile: domain.StudentProfile{
			Name:    "Alberto Jr Deniros",
			Section: "BSCS 1-A",
			Age:     23,
			Gender:  "MALE",
			Device:  "Desktop Computer",
		},
		Grades: grades.Policy{
			Labels:  []string{"Prelim", "Midterm", "PreFinal", "Final"},
			Min:     0,
			Max:     100,
			Passing: 80,
		},
		Triangle: triangle.Limits{
			MinHeight: 1,
			MaxHeight: 20,
		},
		Rates: []domain.RateEntry{
			{Code: domain.USD, Symbol: "$", PHPPerUnit: 58.2554},
			{Code: domain.EUR, Symbol: "€", PHPPerUnit: 67.6375},
			{Code: domain.JPY, Symbol: "¥", PHPPerUnit: 0.3818},
			{Code: domain.AUD, Symbol: "A$", PHPPerUnit: 38.3071},
		},
		Exchange: exchange.Policy{
			FeeRate:   0.05,
			MinAmount: 100,
			MaxAmount: 100000,
		},
	}
}
