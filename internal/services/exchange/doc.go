// Package exchange implements the Currency Exchange Calculator activity:
// one-directional PHP-to-foreign conversion over a fixed rate table with a
// flat transaction fee, plus a rate view screen.
package exchange
