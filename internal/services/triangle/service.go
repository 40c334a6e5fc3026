package triangle

import (
	"fmt"
	"strings"

	"activityhub/internal/domain"
	"activityhub/internal/menu"
)

// marker is the character triangles are drawn with.
const marker = "*"

// Limits bounds the accepted triangle height. The upper bound is a display
// size policy, not a technical limit.
type Limits struct {
	MinHeight int
	MaxHeight int
}

// Service draws triangle patterns through its own sub-menu.
type Service struct {
	console domain.Console
	prompts domain.Prompter
	limits  Limits
}

// New returns the triangle activity over the given console, prompter and limits.
func New(c domain.Console, p domain.Prompter, limits Limits) *Service {
	return &Service{console: c, prompts: p, limits: limits}
}

// Name is the label the menu lists the activity under.
func (s *Service) Name() string { return "Triangle Loop Activity" }

// RightLines returns the right triangle of the given height: line i
// (1-indexed) holds i markers.
func RightLines(height int) []string {
	lines := make([]string, 0, height)
	for i := 1; i <= height; i++ {
		lines = append(lines, strings.Repeat(marker, i))
	}
	return lines
}

// InvertedLines returns the inverted triangle of the given height: line i
// holds height-i+1 markers.
func InvertedLines(height int) []string {
	lines := make([]string, 0, height)
	for i := height; i >= 1; i-- {
		lines = append(lines, strings.Repeat(marker, i))
	}
	return lines
}

// Run shows the triangle sub-menu until its exit entry is chosen.
func (s *Service) Run() error {
	s.console.Header(s.Name())

	m := &menu.Menu{
		Lead: "Triangle Options:",
		Options: []menu.Option{
			{Label: "Right Triangle", Run: s.drawRight},
			{Label: "Inverted Triangle", Run: s.drawInverted},
			{Label: "Both", Run: s.drawBoth},
		},
		ExitLabel: "Exit",
		ExitNotes: []string{
			"Exiting Triangle Activity...",
			"Successfully Navigated to Main Menu",
			"",
		},
	}
	return m.Run(s.console, s.prompts)
}

// height prompts for a triangle height inside the configured bounds.
func (s *Service) height() (int, error) {
	return s.prompts.IntInRange(
		fmt.Sprintf("Enter height (%d-%d): ", s.limits.MinHeight, s.limits.MaxHeight),
		s.limits.MinHeight, s.limits.MaxHeight,
	)
}

func (s *Service) print(label string, lines []string) {
	s.console.Say(label)
	for _, line := range lines {
		s.console.Say(line)
	}
}

func (s *Service) drawRight() error {
	h, err := s.height()
	if err != nil {
		return err
	}
	s.console.Say("")
	s.print("Right Triangle:", RightLines(h))
	return s.console.Pause()
}

func (s *Service) drawInverted() error {
	h, err := s.height()
	if err != nil {
		return err
	}
	s.console.Say("")
	s.print("Inverted Triangle:", InvertedLines(h))
	return s.console.Pause()
}

func (s *Service) drawBoth() error {
	h, err := s.height()
	if err != nil {
		return err
	}
	s.console.Say("")
	s.print("Right Triangle:", RightLines(h))
	s.console.Say("")
	s.print("Inverted Triangle:", InvertedLines(h))
	return s.console.Pause()
}

// Compile-time assertion that Service implements domain.Activity.
var _ domain.Activity = (*Service)(nil)
