// File: hconf/doc.go

// Package hconf provides hierarchical configuration objects for Go
// applications: an in-memory tree of key-value mappings with dot-notation
// and explicit-segment addressing, merging, flattening, overwrite
// protection, and JSON/YAML/TOML file support.
//
// Features:
//   - Ordered configuration trees with path-style access ("server.port")
//   - Three mutation policies: Plain, Careful (overwrite-guarded), Frozen
//   - Non-mutating recursive Merge with later-operand precedence
//   - Flatten/Unflatten between trees and flat dot-keyed mappings
//   - Typed getters with automatic conversions for common Go types
//   - Struct decoding via mapstructure ("config" tags)
//   - File, directory, and command-line collaborators exchanging plain
//     nested mappings with the core
//   - Builder pattern for layered initialization
//
// Quick Start:
//
//	cfg, err := hconf.LoadFile("config.yaml", hconf.Careful)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	host, _ := cfg.String("server.host")
//	port, _ := cfg.Int64("server.port")
//
//	if err := cfg.Set("server.tls", true); err != nil {
//	    // Careful trees reject overwrites of existing keys:
//	    // use cfg.Overwrite("server.tls", true) to replace deliberately.
//	}
//
// Layered sources, later layers winning:
//
//	cfg, err := hconf.NewBuilder().
//	    WithFile("config.toml").
//	    WithDir("conf.d").
//	    WithArgs(os.Args[1:]...).
//	    Build()
//
// Concurrency:
// Trees are single-writer. Each tree exclusively owns its descendants, so
// different trees may be used from different goroutines freely; concurrent
// mutation of one tree is not guarded.
package hconf
