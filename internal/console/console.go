package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"activityhub/internal/domain"
	"activityhub/internal/lineio"
)

// ruleWidth is the width of the horizontal rule used between sections.
const ruleWidth = 45

// bannerStyle boxes the program banner. Border characters are plain text,
// so rendering is identical on and off a terminal.
var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	Padding(0, 2)

// Console writes the fixed screen furniture to out. Pause shares the input
// line source with the prompt reader so the stream cursor stays consistent.
type Console struct {
	out io.Writer
	in  *lineio.Source
}

// New returns a console writing to out and pausing on lines from in.
func New(out io.Writer, in *lineio.Source) *Console {
	return &Console{out: out, in: in}
}

// Banner prints the boxed program banner.
func (c *Console) Banner(lines ...string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, bannerStyle.Render(strings.Join(lines, "\n")))
}

// Header prints a bordered section title.
func (c *Console) Header(title string) {
	fmt.Fprintf(c.out, "\n>>> ===== %s ===== <<<\n", title)
}

// Rule prints a fixed-width horizontal rule.
func (c *Console) Rule() {
	fmt.Fprintln(c.out, strings.Repeat("-", ruleWidth))
}

// Say echoes one line verbatim.
func (c *Console) Say(msg string) {
	fmt.Fprintln(c.out, msg)
}

// Sayf formats and echoes one line.
func (c *Console) Sayf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Pause blocks until one line of input arrives. It returns io.EOF when the
// input stream is exhausted.
func (c *Console) Pause() error {
	fmt.Fprint(c.out, "\n>>> Press Enter to continue...")
	_, err := c.in.Next()
	return err
}

var _ domain.Console = (*Console)(nil)
