// Package ui provides semantic text formatting for Pagelock's terminal
// output.
//
// Formatters pair a color with a plain-text fallback so output stays
// readable when colors are disabled via NO_COLOR or a dumb terminal.
package ui
