// File: hconf/io_test.go
package hconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile is a test helper for seeding config files.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// TestLoadFile tests loading each supported format into a tree
func TestLoadFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			"YAML", "config.yaml", `
server:
  host: localhost
  port: 8080
debug: true
timeout: 2.5
`,
		},
		{
			"JSON", "config.json", `{
  "server": {"host": "localhost", "port": 8080},
  "debug": true,
  "timeout": 2.5
}`,
		},
		{
			"TOML", "config.toml", `
debug = true
timeout = 2.5

[server]
host = "localhost"
port = 8080
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeFile(t, path, tt.content)

			cfg, err := LoadFile(path, Careful)
			require.NoError(t, err)

			host, err := cfg.String("server.host")
			require.NoError(t, err)
			assert.Equal(t, "localhost", host)

			port, err := cfg.Int64("server.port")
			require.NoError(t, err)
			assert.Equal(t, int64(8080), port)

			debug, err := cfg.Bool("debug")
			require.NoError(t, err)
			assert.True(t, debug)

			timeout, err := cfg.Float64("timeout")
			require.NoError(t, err)
			assert.Equal(t, 2.5, timeout)
		})
	}

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"), Careful)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("ContentSniffingForUnknownExtension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.conf")
		writeFile(t, path, `{"mode": "sniffed"}`)

		cfg, err := LoadFile(path, Careful)
		require.NoError(t, err)

		mode, err := cfg.String("mode")
		require.NoError(t, err)
		assert.Equal(t, "sniffed", mode)
	})

	t.Run("MalformedContent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		writeFile(t, path, `{"unterminated": `)

		_, err := LoadFile(path, Careful)
		assert.Error(t, err)
	})

	t.Run("FrozenVariant", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		writeFile(t, path, "key: value\n")

		cfg, err := LoadFile(path, Frozen)
		require.NoError(t, err)
		assert.ErrorIs(t, cfg.Set("other", 1), ErrImmutable)

		v, err := cfg.String("key")
		require.NoError(t, err)
		assert.Equal(t, "value", v)
	})
}

// TestSaveRoundTrip tests that Save then LoadFile reproduces the tree content
func TestSaveRoundTrip(t *testing.T) {
	original, err := FromMap(map[string]any{
		"server": map[string]any{"host": "localhost", "port": 8080},
		"debug":  true,
	}, Careful)
	require.NoError(t, err)

	for _, ext := range []string{".yaml", ".json", ".toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config"+ext)
			require.NoError(t, original.Save(path))

			loaded, err := LoadFile(path, Careful)
			require.NoError(t, err)

			host, err := loaded.String("server.host")
			require.NoError(t, err)
			assert.Equal(t, "localhost", host)

			port, err := loaded.Int64("server.port")
			require.NoError(t, err)
			assert.Equal(t, int64(8080), port)

			debug, err := loaded.Bool("debug")
			require.NoError(t, err)
			assert.True(t, debug)
		})
	}

	t.Run("UnknownExtension", func(t *testing.T) {
		err := original.Save(filepath.Join(t.TempDir(), "config.ini"))
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("ExplicitFormat", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.conf")
		require.NoError(t, original.SaveFormat(path, FormatJSON))

		loaded, err := LoadFile(path, Careful)
		require.NoError(t, err)

		debug, err := loaded.Bool("debug")
		require.NoError(t, err)
		assert.True(t, debug)
	})
}

// TestLoadDir tests assembling a tree from a configuration directory
func TestLoadDir(t *testing.T) {
	t.Run("BaseAndSubFiles", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "config.yaml"), "name: app\n")
		writeFile(t, filepath.Join(dir, "server.yaml"), "host: localhost\nport: 8080\n")

		cfg, err := LoadDir(dir, Careful)
		require.NoError(t, err)

		name, err := cfg.String("name")
		require.NoError(t, err)
		assert.Equal(t, "app", name)

		host, err := cfg.String("server.host")
		require.NoError(t, err)
		assert.Equal(t, "localhost", host)
	})

	t.Run("OptionSelection", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "config.yaml"), "model: cnn\n")
		writeFile(t, filepath.Join(dir, "model.yaml"), `
cnn:
  layers: 5
mlp:
  layers: 3
`)

		cfg, err := LoadDir(dir, Careful)
		require.NoError(t, err)

		layers, err := cfg.Int64("model.layers")
		require.NoError(t, err)
		assert.Equal(t, int64(5), layers)
		assert.False(t, cfg.Has("model.mlp"))
	})

	t.Run("UnknownOptionFails", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "config.yaml"), "model: rnn\n")
		writeFile(t, filepath.Join(dir, "model.yaml"), "cnn:\n  layers: 5\n")

		_, err := LoadDir(dir, Careful)
		assert.Error(t, err)
	})

	t.Run("NestedDirectories", func(t *testing.T) {
		dir := t.TempDir()
		sub := filepath.Join(dir, "db")
		require.NoError(t, os.MkdirAll(sub, 0755))
		writeFile(t, filepath.Join(dir, "config.yaml"), "name: app\n")
		writeFile(t, filepath.Join(sub, "config.yaml"), "dsn: localhost:5432\n")

		cfg, err := LoadDir(dir, Careful)
		require.NoError(t, err)

		dsn, err := cfg.String("db.dsn")
		require.NoError(t, err)
		assert.Equal(t, "localhost:5432", dsn)
	})

	t.Run("SkipsUnrecognizedFiles", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "config.yaml"), "name: app\n")
		writeFile(t, filepath.Join(dir, "README.md"), "# not config\n")

		cfg, err := LoadDir(dir, Careful)
		require.NoError(t, err)
		assert.Equal(t, []string{"name"}, cfg.Keys())
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		_, err := LoadDir(filepath.Join(t.TempDir(), "absent"), Careful)
		assert.ErrorIs(t, err, ErrConfigNotFound)
	})

	t.Run("FrozenVariant", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "config.yaml"), "name: app\n")

		cfg, err := LoadDir(dir, Frozen)
		require.NoError(t, err)
		assert.Equal(t, Frozen, cfg.Variant())
		assert.ErrorIs(t, cfg.Set("other", 1), ErrImmutable)
	})
}

// TestSaveDir tests writing a tree into a directory's main config file
func TestSaveDir(t *testing.T) {
	cfg, err := FromMap(map[string]any{"name": "app"}, Careful)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "conf.d")
	require.NoError(t, cfg.SaveDir(dir, FormatTOML))

	loaded, err := LoadDir(dir, Careful)
	require.NoError(t, err)

	name, err := loaded.String("name")
	require.NoError(t, err)
	assert.Equal(t, "app", name)
}
