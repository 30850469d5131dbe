// File: hconf/builder.go
package hconf

import (
	"errors"
	"fmt"
)

// Builder provides a fluent interface for assembling a configuration tree
// from several collaborator sources. Sources are layered in a fixed
// precedence order, later layers winning on conflicts:
//
//	file < directory < command-line arguments
//
// Missing files and directories (ErrConfigNotFound) are not fatal: the
// remaining sources still apply and the joined error is returned alongside
// the built tree so callers can decide.
type Builder struct {
	variant Variant
	file    string
	dir     string
	args    []string
	keyMods map[string]string
}

// NewBuilder creates a builder producing Careful trees by default.
func NewBuilder() *Builder {
	return &Builder{variant: Careful}
}

// WithVariant sets the mutation policy of the built tree.
func (b *Builder) WithVariant(variant Variant) *Builder {
	b.variant = variant
	return b
}

// WithFile sets the base configuration file path.
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithDir sets a configuration directory layered over the file.
func (b *Builder) WithDir(path string) *Builder {
	b.dir = path
	return b
}

// WithArgs sets command-line tokens layered over file and directory.
// The tokens follow the FromArgs grammar.
func (b *Builder) WithArgs(args ...string) *Builder {
	b.args = args
	return b
}

// WithKeyMods sets key modifiers applied to keys read from the base file.
func (b *Builder) WithKeyMods(mods map[string]string) *Builder {
	b.keyMods = mods
	return b
}

// Build assembles the tree from all configured sources.
func (b *Builder) Build() (*Config, error) {
	// Frozen trees are assembled mutable and frozen at the end.
	buildVariant := b.variant
	if buildVariant == Frozen {
		buildVariant = Careful
	}

	cfg := New(buildVariant)
	var loadErrors []error

	if b.file != "" {
		m, err := readNestedFile(b.file)
		switch {
		case errors.Is(err, ErrConfigNotFound):
			loadErrors = append(loadErrors, err)
		case err != nil:
			return nil, err
		default:
			fileCfg, err := FromMapMods(m, b.keyMods, buildVariant)
			if err != nil {
				return nil, err
			}
			cfg = cfg.Merge(fileCfg)
		}
	}

	if b.dir != "" {
		dirCfg, err := LoadDir(b.dir, buildVariant)
		switch {
		case errors.Is(err, ErrConfigNotFound):
			loadErrors = append(loadErrors, err)
		case err != nil:
			return nil, err
		default:
			cfg = cfg.Merge(dirCfg)
		}
	}

	if len(b.args) > 0 {
		argCfg, err := FromArgsVariant(b.args, buildVariant)
		if err != nil {
			return nil, err
		}
		cfg = cfg.Merge(argCfg)
	}

	if b.variant == Frozen {
		cfg = cfg.Freeze()
	}
	return cfg, errors.Join(loadErrors...)
}

// MustBuild is like Build but panics on error. ErrConfigNotFound is not
// fatal; the tree built from the remaining sources is returned.
func (b *Builder) MustBuild() *Config {
	cfg, err := b.Build()
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return cfg
}
