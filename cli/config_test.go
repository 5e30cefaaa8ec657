package cli

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLoadSettings(t *testing.T) {
	tests := map[string]struct {
		env      map[string]string
		expected Settings
	}{
		"Unset":            {expected: Settings{}},
		"Debug":            {env: map[string]string{"MY_CLI_DEBUG": "yes"}, expected: Settings{Debug: true}},
		"Lenient":          {env: map[string]string{"MY_CLI_LENIENT_ARGS": "1"}, expected: Settings{LenientArgs: true}},
		"Case insensitive": {env: map[string]string{"my_cli_debug": "TRUE", "My_Cli_Lenient_Args": " On "}, expected: Settings{Debug: true, LenientArgs: true}},
		"Explicit false":   {env: map[string]string{"MY_CLI_DEBUG": "off"}, expected: Settings{}},
		"Invalid value":    {env: map[string]string{"MY_CLI_DEBUG": "maybe"}, expected: Settings{}},
		"Other prefix":     {env: map[string]string{"OTHER_DEBUG": "true"}, expected: Settings{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for key, val := range tc.env {
				t.Setenv(key, val)
			}
			assert.Equal(t, tc.expected, LoadSettings("my-cli"))
		})
	}
}

func TestEnvPrefix(t *testing.T) {
	tests := map[string]string{
		"my-cli":   "MY_CLI_",
		"tool":     "TOOL_",
		"a..b  c":  "A_B_C_",
		"-dashed-": "DASHED_",
		"":         "",
		"---":      "",
	}
	for prefix, expected := range tests {
		t.Run(prefix, func(t *testing.T) {
			assert.Equal(t, expected, envPrefix(prefix))
		})
	}
}

func TestNewApplication_Settings(t *testing.T) {
	t.Setenv("MY_CLI_DEBUG", "true")
	app := NewApplication("my-cli")
	assert.True(t, app.Settings.Debug)
	assert.False(t, app.Settings.LenientArgs)
	assert.NotNil(t, app.ResolverContext().Logger, "Debug settings should enable resolution logs")
}
