package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
}

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range settingsCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"show", "wizard", "document", "embedding", "llm"} {
		assert.True(t, names[want], "subcommand %s should exist", want)
	}
}

func TestSettingsDocumentCmd_HasExtractorFlag(t *testing.T) {
	assert.NotNil(t, settingsDocumentCmd.Flags().Lookup("extractor"))
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{"empty returns default", "", 3, 1, 1},
		{"valid choice", "2", 3, 1, 2},
		{"out of range returns default", "5", 3, 1, 1},
		{"zero returns default", "0", 3, 1, 1},
		{"non-numeric returns default", "abc", 3, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, parseChoice(tc.input, tc.maxVal, tc.defaultVal))
		})
	}
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", maskAPIKey("short"))
	assert.Equal(t, "****", maskAPIKey(""))
	assert.Equal(t, "AIza...wxyz", maskAPIKey("AIzaSomeLongKeywxyz"))
}
