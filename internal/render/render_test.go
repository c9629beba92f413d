// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Style
		wantErr bool
	}{
		{name: "plain", input: "plain", want: Plain},
		{name: "banner", input: "banner", want: Banner},
		{name: "empty", input: "", wantErr: true},
		{name: "uppercase is rejected", input: "BANNER", wantErr: true},
		{name: "unknown", input: "fancy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStyle(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid style")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_Plain(t *testing.T) {
	got := Render(Plain, "hello")

	assert.Equal(t, "hello\n", got)
}

func TestRender_UnknownFallsBackToPlain(t *testing.T) {
	got := Render(Style("other"), "hello")

	assert.Equal(t, "hello\n", got)
}

func TestRender_Banner(t *testing.T) {
	got := Render(Banner, "hello")

	assert.Contains(t, got, "hello")
	assert.True(t, strings.HasSuffix(got, "\n"), "banner output should end with a newline")
	// Top border, text, bottom border.
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "╭")
	assert.Contains(t, lines[2], "╯")
}
