// File: hconf/cli.go
package hconf

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// FromArgs builds a Careful configuration from command-line tokens.
// See FromArgsVariant for the accepted grammar.
func FromArgs(args []string) (*Config, error) {
	return FromArgsVariant(args, Careful)
}

// FromArgsVariant parses command-line tokens into a configuration tree.
// Accepted tokens:
//
//	KEY=VALUE          assignment, KEY may be a dot-notation path
//	--config FILE      base configuration file to load first
//	--config=FILE      same as above
//
// Values are parsed as JSON literals (numbers, booleans, null, strings,
// arrays, objects) with a plain-string fallback. Assignments are layered
// over the base file, later tokens winning, so "--config base.yaml
// server.port=9090" overrides the port from the file.
func FromArgsVariant(args []string, variant Variant) (*Config, error) {
	overrides := New(Plain)
	configFile := ""

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--config":
			if i+1 >= len(args) {
				return nil, fmt.Errorf("flag --config requires a file argument")
			}
			configFile = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			configFile = strings.TrimPrefix(arg, "--config=")
		default:
			key, raw, found := strings.Cut(arg, "=")
			if !found || key == "" {
				return nil, fmt.Errorf("%w: argument %q is not a KEY=VALUE assignment", ErrInvalidPath, arg)
			}
			if err := overrides.Set(key, parseCLIValue(raw)); err != nil {
				return nil, err
			}
		}
	}

	base := New(variant)
	if configFile != "" {
		var err error
		base, err = LoadFile(configFile, variant)
		if err != nil {
			return nil, err
		}
	}

	return base.Merge(overrides), nil
}

// parseCLIValue interprets an assignment value as a JSON literal, falling
// back to the raw string. Numbers keep full precision as json.Number,
// matching the JSON file codec.
func parseCLIValue(raw string) any {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return raw
	}
	// Reject trailing garbage such as `1foo`.
	if _, err := decoder.Token(); err != io.EOF {
		return raw
	}
	return value
}
