package domain

// Console renders the fixed screen furniture every activity shares.
// Implementations write plain text; they hold no decision logic.
type Console interface {
	// Banner prints the boxed program banner.
	Banner(lines ...string)
	// Header prints a bordered section title.
	Header(title string)
	// Rule prints a fixed-width horizontal rule.
	Rule()
	// Say echoes one line verbatim.
	Say(msg string)
	// Sayf formats and echoes one line.
	Sayf(format string, args ...any)
	// Pause blocks until the user supplies one line. The only possible
	// error is exhaustion of the input stream.
	Pause() error
}

// Prompter reads validated values from the input stream. Every method
// retries until the input parses and satisfies its constraints; parse and
// range failures never surface to the caller. The only error ever returned
// is exhaustion of the input stream (io.EOF).
type Prompter interface {
	Int(prompt string) (int, error)
	IntInRange(prompt string, min, max int) (int, error)
	Float(prompt string) (float64, error)
	FloatInRange(prompt string, min, max float64) (float64, error)
	YesNo(prompt string) (bool, error)
}

// Activity is one menu-selectable feature of the program.
type Activity interface {
	// Name is the label the menu lists the activity under.
	Name() string
	// Run drives the activity to completion, returning only on input
	// stream exhaustion or normal completion.
	Run() error
}
