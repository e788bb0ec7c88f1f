package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExitCodes(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("instance:\n  flavor: mastodon\n  baseURL: https://social.example\n"), 0o600))
	tokenPath := filepath.Join(dir, "token.json")
	require.NoError(t, os.WriteFile(tokenPath, []byte(`{"access_token":"abc","token_type":"Bearer"}`), 0o600))

	args := os.Args
	defer func() { os.Args = args }()

	tests := map[string]struct {
		config string
		args   []string
		code   int
	}{
		"no command":     {configPath, []string{"unifedi"}, 2},
		"missing config": {filepath.Join(dir, "missing.yaml"), []string{"unifedi", "decode"}, 1},
		"unknown":        {configPath, []string{"unifedi", "publish"}, 2},
		"decode":         {configPath, []string{"unifedi", "decode", "-entity", "token", tokenPath}, 0},
		"bad entity":     {configPath, []string{"unifedi", "decode", "-entity", "instance", tokenPath}, 1},
		"decode failure": {configPath, []string{"unifedi", "decode", "-entity", "account", tokenPath}, 1},
	}
	for name, tc := range tests {
		t.Setenv("UNIFEDI_CONFIG", tc.config)
		os.Args = tc.args
		assert.Equal(t, tc.code, run(), name)
	}
}
