package grades_test

import (
	"bytes"
	"strings"
	"testing"

	"activityhub/internal/console"
	"activityhub/internal/domain"
	"activityhub/internal/lineio"
	"activityhub/internal/prompt"
	"activityhub/internal/services/grades"
)

func records(values ...float64) []domain.GradeRecord {
	labels := []string{"Prelim", "Midterm", "PreFinal", "Final"}
	recs := make([]domain.GradeRecord, len(values))
	for i, v := range values {
		recs[i] = domain.GradeRecord{Label: labels[i], Value: v}
	}
	return recs
}

func TestEvaluate_InclusiveThreshold(t *testing.T) {
	cases := []struct {
		name    string
		scores  []float64
		average float64
		passed  bool
	}{
		{"exactly at threshold passes", []float64{80, 80, 80, 80}, 80, true},
		{"all zero fails", []float64{0, 0, 0, 0}, 0, false},
		{"mixed above threshold passes", []float64{100, 100, 60, 100}, 90, true},
		{"just under threshold fails", []float64{80, 80, 80, 79}, 79.75, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := grades.Evaluate(records(tc.scores...), 80)
			if res.Average != tc.average {
				t.Fatalf("average = %v, want %v", res.Average, tc.average)
			}
			if res.Passed != tc.passed {
				t.Fatalf("passed = %v, want %v", res.Passed, tc.passed)
			}
		})
	}
}

// newService wires a grade evaluator over scripted input.
func newService(input string) (*grades.Service, *bytes.Buffer) {
	out := &bytes.Buffer{}
	lines := lineio.New(strings.NewReader(input))
	c := console.New(out, lines)
	p := prompt.New(lines, out)
	policy := grades.Policy{
		Labels:  []string{"Prelim", "Midterm", "PreFinal", "Final"},
		Min:     0,
		Max:     100,
		Passing: 80,
	}
	return grades.New(c, p, policy), out
}

func TestRun_PassingScreen(t *testing.T) {
	svc, out := newService("80\n80\n80\n80\n\n")

	if err := svc.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	screen := out.String()
	if !strings.Contains(screen, "Your average: 80") {
		t.Fatalf("missing average:\n%s", screen)
	}
	if !strings.Contains(screen, "PASADO KA BOI!!") {
		t.Fatalf("missing pass remark:\n%s", screen)
	}
	if strings.Contains(screen, "BAGSAK") {
		t.Fatalf("fail remark on passing screen:\n%s", screen)
	}
}

func TestRun_FailingScreen(t *testing.T) {
	svc, out := newService("0\n0\n0\n0\n\n")

	if err := svc.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "BAGSAK KA BOI!!") {
		t.Fatalf("missing fail remark:\n%s", out.String())
	}
}

func TestRun_PromptsEachPeriodAndRejectsOutOfRange(t *testing.T) {
	svc, out := newService("101\n90\n90\n90\n90\n\n")

	if err := svc.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	screen := out.String()
	for _, label := range []string{"Prelim", "Midterm", "PreFinal", "Final"} {
		if !strings.Contains(screen, "Enter "+label+" Grade: ") {
			t.Fatalf("missing %s prompt:\n%s", label, screen)
		}
	}
	if !strings.Contains(screen, "[ERROR] Value must be between 0 and 100. Try again.") {
		t.Fatalf("out-of-range score not rejected:\n%s", screen)
	}
	if !strings.Contains(screen, "Your average: 90") {
		t.Fatalf("missing average:\n%s", screen)
	}
}
