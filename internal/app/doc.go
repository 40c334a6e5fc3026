// Package app wires application dependencies for the CLI.
//
// It builds the console, the validated prompt reader and the activity
// services from Config, exposing them via the Wire struct for commands to
// use.
package app
