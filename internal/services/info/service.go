package info

import "activityhub/internal/domain"

// Service shows the student profile card. It takes no input beyond the
// closing pause and has no error paths of its own.
type Service struct {
	console domain.Console
	profile domain.StudentProfile
}

// New returns the info activity over the given console and profile.
func New(c domain.Console, profile domain.StudentProfile) *Service {
	return &Service{console: c, profile: profile}
}

// Name is the label the menu lists the activity under.
func (s *Service) Name() string { return "Virtual Student Info" }

// Run prints the profile fields and pauses.
func (s *Service) Run() error {
	s.console.Header(s.Name())
	s.console.Sayf("Name: %s", s.profile.Name)
	s.console.Sayf("Section and Course: %s", s.profile.Section)
	s.console.Sayf("AGE: %d", s.profile.Age)
	s.console.Sayf("GENDER: %s", s.profile.Gender)
	s.console.Sayf("CODING DEVICES: %s", s.profile.Device)
	return s.console.Pause()
}

// Compile-time assertion that Service implements domain.Activity.
var _ domain.Activity = (*Service)(nil)
