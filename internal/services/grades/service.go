package grades

import (
	"fmt"

	"activityhub/internal/domain"
)

// Policy is the grading policy injected from configuration.
type Policy struct {
	Labels   []string // grading periods, prompted in order
	Min, Max float64  // accepted score bounds
	Passing  float64  // inclusive pass threshold for the average
}

// Service collects scores and reports the pass/fail outcome.
type Service struct {
	console domain.Console
	prompts domain.Prompter
	policy  Policy
}

// New returns the grade evaluator over the given console, prompter and policy.
func New(c domain.Console, p domain.Prompter, policy Policy) *Service {
	return &Service{console: c, prompts: p, policy: policy}
}

// Name is the label the menu lists the activity under.
func (s *Service) Name() string { return "Student Grade Evaluator" }

// Evaluate averages the records with real division and applies the
// inclusive threshold: an average exactly at passing passes. No rounding
// happens before the comparison.
func Evaluate(records []domain.GradeRecord, passing float64) domain.GradeResult {
	var sum float64
	for _, rec := range records {
		sum += rec.Value
	}
	avg := sum / float64(len(records))
	return domain.GradeResult{Average: avg, Passed: avg >= passing}
}

// Run collects one score per grading period, then shows the average and
// remark. Records are local to the call and not retained.
func (s *Service) Run() error {
	s.console.Header(s.Name())

	records := make([]domain.GradeRecord, 0, len(s.policy.Labels))
	for _, label := range s.policy.Labels {
		v, err := s.prompts.FloatInRange(
			fmt.Sprintf("Enter %s Grade: ", label), s.policy.Min, s.policy.Max,
		)
		if err != nil {
			return err
		}
		records = append(records, domain.GradeRecord{Label: label, Value: v})
	}

	res := Evaluate(records, s.policy.Passing)

	s.console.Rule()
	s.console.Sayf("Passing grade: %v", s.policy.Passing)
	s.console.Sayf("Your average: %v", res.Average)
	s.console.Say("REMARKS: ")
	if res.Passed {
		s.console.Header("PASADO KA BOI!!")
	} else {
		s.console.Header("BAGSAK KA BOI!!")
	}
	s.console.Rule()

	return s.console.Pause()
}

// Compile-time assertion that Service implements domain.Activity.
var _ domain.Activity = (*Service)(nil)
