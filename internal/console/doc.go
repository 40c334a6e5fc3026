// Package console implements the shared presentation helpers: banner,
// section headers, horizontal rules, message echo and the enter-to-continue
// pause. All output goes through an injected writer so screens are
// testable byte for byte.
package console
