// Package menu implements the labeled-menu state machine used by the main
// menu and every activity sub-menu: render the numbered options, read a
// validated choice, dispatch the matching handler, repeat until the
// reserved exit entry is chosen.
package menu
