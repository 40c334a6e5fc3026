package app

import (
	"errors"
	"io"

	"activityhub/internal/console"
	"activityhub/internal/domain"
	"activityhub/internal/lineio"
	"activityhub/internal/menu"
	"activityhub/internal/prompt"
	"activityhub/internal/services/exchange"
	"activityhub/internal/services/grades"
	"activityhub/internal/services/info"
	"activityhub/internal/services/triangle"
)

// banner is the welcome line shown once at startup of the interactive menu.
const banner = "WELCOME TO PROGRAMMING ACTIVITY SYSTEM"

// Wire bundles the console, prompt reader, activities and main menu for
// the CLI.
type Wire struct {
	Console  *console.Console
	Prompts  *prompt.Reader
	Info     *info.Service
	Grades   *grades.Service
	Triangle *triangle.Service
	Exchange *exchange.Service
	Main     *menu.Menu
}

// NewWire constructs the dependency graph from cfg. The input stream is
// wrapped in a single line source shared by the console and the prompt
// reader, so both advance the same cursor.
func NewWire(cfg Config) *Wire {
	lines := lineio.New(cfg.In)
	con := console.New(cfg.Out, lines)
	prompts := prompt.New(lines, cfg.Out)

	infoSvc := info.New(con, cfg.Profile)
	gradeSvc := grades.New(con, prompts, cfg.Grades)
	triSvc := triangle.New(con, prompts, cfg.Triangle)
	exSvc := exchange.New(con, prompts, cfg.Rates, cfg.Exchange)

	log := cfg.Log
	main := &menu.Menu{
		Title: "PROGRAMMING ACTIVITY MENU",
		Options: []menu.Option{
			{Label: infoSvc.Name(), Run: infoSvc.Run},
			{Label: gradeSvc.Name(), Run: gradeSvc.Run},
			{Label: triSvc.Name(), Run: triSvc.Run},
			{Label: exSvc.Name(), Run: exSvc.Run},
		},
		ExitLabel: "Exit Program",
		ExitNotes: []string{"Exiting program... Goodbye!"},
		Numbering: "[%d] %s",
		Log:       &log,
	}

	return &Wire{
		Console:  con,
		Prompts:  prompts,
		Info:     infoSvc,
		Grades:   gradeSvc,
		Triangle: triSvc,
		Exchange: exSvc,
		Main:     main,
	}
}

// Run shows the welcome banner and drives the main menu until the exit
// choice. Input stream exhaustion counts as normal termination.
func (w *Wire) Run() error {
	w.Console.Banner(banner)
	err := w.Main.Run(w.Console, w.Prompts)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// RunActivity drives a single activity, applying the same end-of-input
// policy as the interactive menu.
func (w *Wire) RunActivity(a domain.Activity) error {
	err := a.Run()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
