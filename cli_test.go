// File: hconf/cli_test.go
package hconf

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromArgs tests KEY=VALUE parsing and value interpretation
func TestFromArgs(t *testing.T) {
	t.Run("JSONLiteralValues", func(t *testing.T) {
		cfg, err := FromArgs([]string{
			"port=8080",
			"ratio=2.5",
			"debug=true",
			"name=hello",
			"empty=null",
			`tags=["a","b"]`,
		})
		require.NoError(t, err)

		port, err := cfg.Int64("port")
		require.NoError(t, err)
		assert.Equal(t, int64(8080), port)

		ratio, err := cfg.Float64("ratio")
		require.NoError(t, err)
		assert.Equal(t, 2.5, ratio)

		debug, err := cfg.Bool("debug")
		require.NoError(t, err)
		assert.True(t, debug)

		name, err := cfg.Get("name")
		require.NoError(t, err)
		assert.Equal(t, "hello", name)

		empty, err := cfg.Get("empty")
		require.NoError(t, err)
		assert.Nil(t, empty)

		tags, err := cfg.Get("tags")
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, tags)
	})

	t.Run("NumbersKeepPrecision", func(t *testing.T) {
		cfg, err := FromArgs([]string{"big=9007199254740993"})
		require.NoError(t, err)

		v, err := cfg.Get("big")
		require.NoError(t, err)
		assert.Equal(t, json.Number("9007199254740993"), v)

		i, err := cfg.Int64("big")
		require.NoError(t, err)
		assert.Equal(t, int64(9007199254740993), i)
	})

	t.Run("TrailingGarbageFallsBackToString", func(t *testing.T) {
		cfg, err := FromArgs([]string{"version=1foo"})
		require.NoError(t, err)

		v, err := cfg.Get("version")
		require.NoError(t, err)
		assert.Equal(t, "1foo", v)
	})

	t.Run("DottedKeysBuildSubTrees", func(t *testing.T) {
		cfg, err := FromArgs([]string{"server.host=localhost", "server.port=8080"})
		require.NoError(t, err)

		host, err := cfg.String("server.host")
		require.NoError(t, err)
		assert.Equal(t, "localhost", host)
		assert.Equal(t, []string{"server"}, cfg.Keys())
	})

	t.Run("LaterTokensWin", func(t *testing.T) {
		cfg, err := FromArgs([]string{"port=1", "port=2"})
		require.NoError(t, err)

		port, err := cfg.Int64("port")
		require.NoError(t, err)
		assert.Equal(t, int64(2), port)
	})

	t.Run("MissingAssignment", func(t *testing.T) {
		_, err := FromArgs([]string{"no-equals-here"})
		assert.ErrorIs(t, err, ErrInvalidPath)

		_, err = FromArgs([]string{"=value"})
		assert.ErrorIs(t, err, ErrInvalidPath)
	})

	t.Run("DefaultVariantIsCareful", func(t *testing.T) {
		cfg, err := FromArgs([]string{"a=1"})
		require.NoError(t, err)
		assert.Equal(t, Careful, cfg.Variant())
		assert.ErrorIs(t, cfg.Set("a", 2), ErrOverwrite)
	})
}

// TestFromArgsConfigFlag tests layering assignments over a base file
func TestFromArgsConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "base.yaml")
	writeFile(t, path, "server:\n  host: localhost\n  port: 8080\n")

	t.Run("SeparateFlagArgument", func(t *testing.T) {
		cfg, err := FromArgs([]string{"--config", path, "server.port=9090"})
		require.NoError(t, err)

		host, err := cfg.String("server.host")
		require.NoError(t, err)
		assert.Equal(t, "localhost", host)

		port, err := cfg.Int64("server.port")
		require.NoError(t, err)
		assert.Equal(t, int64(9090), port)
	})

	t.Run("EqualsForm", func(t *testing.T) {
		cfg, err := FromArgs([]string{"--config=" + path})
		require.NoError(t, err)

		port, err := cfg.Int64("server.port")
		require.NoError(t, err)
		assert.Equal(t, int64(8080), port)
	})

	t.Run("OverridesWinRegardlessOfTokenOrder", func(t *testing.T) {
		cfg, err := FromArgs([]string{"server.port=9090", "--config", path})
		require.NoError(t, err)

		port, err := cfg.Int64("server.port")
		require.NoError(t, err)
		assert.Equal(t, int64(9090), port)
	})

	t.Run("DanglingFlag", func(t *testing.T) {
		_, err := FromArgs([]string{"--config"})
		assert.Error(t, err)
	})

	t.Run("MissingBaseFile", func(t *testing.T) {
		_, err := FromArgs([]string{"--config", filepath.Join(dir, "absent.yaml")})
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})
}
