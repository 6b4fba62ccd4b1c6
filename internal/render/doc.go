// Package render converts Markdown input into a standalone HTML document
// and optionally minifies HTML before it is encrypted.
//
// Conversion uses goldmark with the tables extension and raw-HTML
// passthrough, wrapped in a fixed document skeleton with an optional
// inline stylesheet. The skeleton is cosmetic; nothing downstream depends
// on its shape.
package render
