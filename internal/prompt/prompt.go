package prompt

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"activityhub/internal/domain"
	"activityhub/internal/lineio"
)

// Reader reads one line per prompt from the shared line source and parses
// the trimmed line as a single token. Empty lines, whitespace-only lines
// and lines with trailing garbage all count as parse failures and trigger
// a retry; the malformed input is discarded, never reinterpreted.
type Reader struct {
	in  *lineio.Source
	out io.Writer
}

// New returns a reader over in that prints prompts and errors to out.
func New(in *lineio.Source, out io.Writer) *Reader {
	return &Reader{in: in, out: out}
}

// line prints prompt and returns the next raw input line. io.EOF is the
// only error an interactive session never sees.
func (r *Reader) line(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	return r.in.Next()
}

func (r *Reader) invalid() {
	fmt.Fprintln(r.out, "\n[ERROR] Invalid input! Try again.")
}

// Int reads until the line parses as an integer.
func (r *Reader) Int(prompt string) (int, error) {
	for {
		raw, err := r.line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			r.invalid()
			continue
		}
		return v, nil
	}
}

// IntInRange reads until the line parses as an integer in [min, max].
// Range violations are reported distinctly from parse failures.
func (r *Reader) IntInRange(prompt string, min, max int) (int, error) {
	for {
		v, err := r.Int(prompt)
		if err != nil {
			return 0, err
		}
		if v < min || v > max {
			fmt.Fprintf(r.out, "[ERROR] Choice must be %d-%d. Try again.\n", min, max)
			continue
		}
		return v, nil
	}
}

// Float reads until the line parses as a finite real number. ParseFloat
// accepts "NaN" and "Inf" tokens, but NaN compares false against any
// bound, so both are rejected here as parse failures.
func (r *Reader) Float(prompt string) (float64, error) {
	for {
		raw, err := r.line(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			r.invalid()
			continue
		}
		return v, nil
	}
}

// FloatInRange reads until the line parses as a real number in [min, max].
func (r *Reader) FloatInRange(prompt string, min, max float64) (float64, error) {
	for {
		v, err := r.Float(prompt)
		if err != nil {
			return 0, err
		}
		if v < min || v > max {
			fmt.Fprintf(r.out, "[ERROR] Value must be between %v and %v. Try again.\n", min, max)
			continue
		}
		return v, nil
	}
}

// YesNo reads until the line is one of y, yes, n, no (case-insensitive).
// Anything else is rejected and re-prompted, never defaulted.
func (r *Reader) YesNo(prompt string) (bool, error) {
	for {
		raw, err := r.line(prompt + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(raw)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(r.out, "[ERROR] Please type 'y' or 'n'.")
	}
}

// Compile-time assertion that Reader implements domain.Prompter.
var _ domain.Prompter = (*Reader)(nil)
