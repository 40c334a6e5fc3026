package info_test

import (
	"bytes"
	"strings"
	"testing"

	"activityhub/internal/console"
	"activityhub/internal/domain"
	"activityhub/internal/lineio"
	"activityhub/internal/services/info"
)

func TestRun_PrintsProfileAndPauses(t *testing.T) {
	out := &bytes.Buffer{}
	c := console.New(out, lineio.New(strings.NewReader("\n")))

	svc := info.New(c, domain.StudentProfile{
		Name:    "Alberto Jr Deniros",
		Section: "BSCS 1-A",
		Age:     23,
		Gender:  "MALE",
		Device:  "Desktop Computer",
	})

	if err := svc.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	screen := out.String()
	for _, want := range []string{
		"Virtual Student Info",
		"Name: Alberto Jr Deniros",
		"Section and Course: BSCS 1-A",
		"AGE: 23",
		"GENDER: MALE",
		"CODING DEVICES: Desktop Computer",
		">>> Press Enter to continue...",
	} {
		if !strings.Contains(screen, want) {
			t.Fatalf("missing %q:\n%s", want, screen)
		}
	}
}
