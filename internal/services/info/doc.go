// Package info implements the Virtual Student Info activity: a static
// profile card printed from configuration.
package info
