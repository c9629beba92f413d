// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package greeting prints the textile-showcase greeting.
package greeting

import (
	"fmt"
	"io"
	"os"

	"github.com/llbbl/textile-showcase/internal/logging"
)

// Message is the greeting written by Main.
const Message = "Hello from textile-showcase!"

// Main writes Message and a newline to standard output.
// Importing the package has no side effect; callers invoke Main explicitly.
func Main() {
	if err := Fprint(os.Stdout); err != nil {
		// Only reachable when stdout itself is broken.
		logging.WithComponent("greeting").Debug("failed to write greeting", "error", err)
	}
}

// Fprint writes Message and a newline to w.
func Fprint(w io.Writer) error {
	if _, err := fmt.Fprintln(w, Message); err != nil {
		return fmt.Errorf("writing greeting: %w", err)
	}
	return nil
}
