package menu_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"activityhub/internal/console"
	"activityhub/internal/lineio"
	"activityhub/internal/menu"
	"activityhub/internal/prompt"
)

// run drives m against scripted input and returns the captured screen.
func run(t *testing.T, m *menu.Menu, input string) (*bytes.Buffer, error) {
	t.Helper()
	out := &bytes.Buffer{}
	lines := lineio.New(strings.NewReader(input))
	return out, m.Run(console.New(out, lines), prompt.New(lines, out))
}

func TestRun_DispatchesThenReturnsToSameMenu(t *testing.T) {
	count := 0
	m := &menu.Menu{
		Title:     "TEST MENU",
		Options:   []menu.Option{{Label: "Count", Run: func() error { count++; return nil }}},
		ExitLabel: "Exit",
	}

	out, err := run(t, m, "1\n1\n2\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count != 2 {
		t.Fatalf("handler ran %d times, want 2", count)
	}
	// Menu redisplays after each dispatch: two dispatches plus the final pass.
	if got := strings.Count(out.String(), "TEST MENU"); got != 3 {
		t.Fatalf("menu rendered %d times, want 3", got)
	}
}

func TestRun_ExitChoiceNeverDispatches(t *testing.T) {
	count := 0
	m := &menu.Menu{
		Options:   []menu.Option{{Label: "Count", Run: func() error { count++; return nil }}},
		ExitLabel: "Exit",
		ExitNotes: []string{"Bye now"},
	}

	out, err := run(t, m, "2\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if count != 0 {
		t.Fatalf("handler ran %d times, want 0", count)
	}
	if !strings.Contains(out.String(), "Bye now") {
		t.Fatalf("missing exit note:\n%s", out.String())
	}
}

func TestRun_OutOfRangeChoiceIsAbsorbed(t *testing.T) {
	m := &menu.Menu{
		Options:   []menu.Option{{Label: "Noop", Run: func() error { return nil }}},
		ExitLabel: "Exit",
	}

	out, err := run(t, m, "9\nbanana\n2\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "[ERROR] Choice must be 1-2. Try again.") {
		t.Fatalf("missing range error:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "[ERROR] Invalid input! Try again.") {
		t.Fatalf("missing parse error:\n%s", out.String())
	}
}

func TestRun_NumberingFormat(t *testing.T) {
	m := &menu.Menu{
		Options:   []menu.Option{{Label: "Thing", Run: func() error { return nil }}},
		ExitLabel: "Exit",
		Numbering: "[%d] %s",
	}

	out, err := run(t, m, "2\n")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "[1] Thing") || !strings.Contains(out.String(), "[2] Exit") {
		t.Fatalf("unexpected numbering:\n%s", out.String())
	}
}

func TestRun_EOFPropagates(t *testing.T) {
	m := &menu.Menu{
		Options:   []menu.Option{{Label: "Noop", Run: func() error { return nil }}},
		ExitLabel: "Exit",
	}

	if _, err := run(t, m, ""); !errors.Is(err, io.EOF) {
		t.Fatalf("got %v, want io.EOF", err)
	}
}

func TestRun_HandlerErrorStopsLoop(t *testing.T) {
	boom := errors.New("boom")
	m := &menu.Menu{
		Options:   []menu.Option{{Label: "Fail", Run: func() error { return boom }}},
		ExitLabel: "Exit",
	}

	if _, err := run(t, m, "1\n"); !errors.Is(err, boom) {
		t.Fatalf("got %v, want boom", err)
	}
}
