// Package translate builds external translation links for synopsis text.
package translate

import (
	"net/url"
	"strings"
)

const (
	// DefaultTarget is the locale links translate into unless configured.
	DefaultTarget = "zh-TW"
	// Placeholder is returned for empty text.
	Placeholder = "#"

	baseURL = "https://translate.google.com/"
)

// componentEscaper turns url.QueryEscape output into URI-component encoding:
// spaces as %20 and the sub-delimiters !'()* left literal.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s for use inside a query value.
func EncodeComponent(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}

// URL returns a Google Translate link for text with the source language
// auto-detected. An empty target selects DefaultTarget; empty text yields
// Placeholder.
func URL(text, target string) string {
	if text == "" {
		return Placeholder
	}
	target = strings.TrimSpace(target)
	if target == "" {
		target = DefaultTarget
	}
	return baseURL + "?sl=auto&tl=" + EncodeComponent(target) +
		"&text=" + EncodeComponent(text) + "&op=translate"
}
