// Package commands defines the activityhub CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - (root)     Run the interactive activity menu
//   - info       Show the virtual student info card
//   - grades     Run the student grade evaluator
//   - triangle   Run the triangle pattern printer
//   - exchange   Run the currency exchange calculator
//   - rates      Print today's exchange rates and leave
//
// # Implementation
//
// The root command builds the dependency graph (console, prompt reader,
// activity services) from the default configuration before any subcommand
// runs, so handlers share one app context and one input stream cursor.
package commands
