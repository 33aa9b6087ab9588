package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "cyberlab", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}

func TestRoot_HasSubcommands(t *testing.T) {
	cmd := Root()

	expected := []string{"onboard", "ping", "validate-roster", "version", "completion"}

	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}

	for _, name := range expected {
		assert.True(t, subcommands[name], "Expected subcommand %s not found", name)
	}
	assert.Len(t, cmd.Commands(), len(expected))
}

func TestOnboard_Flags(t *testing.T) {
	cmd := Onboard(&globalOptions{})

	tests := []struct {
		flag     string
		defValue string
	}{
		{"customer", ""},
		{"roster", "users.csv"},
		{"dry-run", "false"},
		{"report-file", ""},
		{"metrics-file", ""},
		{"non-interactive", "false"},
	}

	for _, tt := range tests {
		f := cmd.Flags().Lookup(tt.flag)
		require.NotNil(t, f, tt.flag)
		assert.Equal(t, tt.defValue, f.DefValue, tt.flag)
	}
}

func TestOnboard_RejectsArgs(t *testing.T) {
	cmd := Root()
	cmd.SetArgs([]string{"onboard", "extra"})

	err := cmd.Execute()
	assert.Error(t, err)
}

func TestValidateRoster_Flags(t *testing.T) {
	cmd := ValidateRoster()

	f := cmd.Flags().Lookup("roster")
	require.NotNil(t, f)
	assert.Equal(t, "r", f.Shorthand)
}
