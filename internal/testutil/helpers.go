// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package testutil provides testing utilities and helpers for the textile-showcase project.
package testutil

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything fn wrote. os.Stdout is restored and the pipe closed even if fn
// panics or calls t.FailNow.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	original := os.Stdout
	os.Stdout = w

	var once sync.Once
	restore := func() {
		once.Do(func() {
			os.Stdout = original
			_ = w.Close()
		})
	}
	defer restore()

	done := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	restore()
	return <-done
}

// FailingWriter is an io.Writer whose Write always returns Err.
type FailingWriter struct {
	Err error
}

// Write implements io.Writer.
func (f FailingWriter) Write(p []byte) (int, error) {
	return 0, f.Err
}
