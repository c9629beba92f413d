// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package render formats the greeting line for terminal output.
package render

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Style selects how the greeting is presented.
type Style string

const (
	// Plain prints the bare line.
	Plain Style = "plain"
	// Banner wraps the line in a rounded border.
	Banner Style = "banner"
)

// ColorPrimary is the accent used by the banner border and text.
const ColorPrimary = lipgloss.Color("#7D56F4")

// validStyles contains the allowed style values.
var validStyles = []Style{Plain, Banner}

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorPrimary).
	Foreground(ColorPrimary).
	Bold(true).
	Padding(0, 1)

// ParseStyle converts a flag or env value into a Style.
func ParseStyle(s string) (Style, error) {
	style := Style(s)
	if !slices.Contains(validStyles, style) {
		return "", fmt.Errorf("invalid style %q: must be one of %v", s, validStyles)
	}
	return style, nil
}

// Render returns text formatted for style, terminated by a newline.
// Unknown styles fall back to Plain.
func Render(style Style, text string) string {
	if style == Banner {
		return bannerStyle.Render(text) + "\n"
	}
	return text + "\n"
}
