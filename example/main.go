// File: hconf/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"hconf"
)

const configFile = "config.yaml"

func main() {
	dir, err := os.MkdirTemp("", "hconf-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	// =========================================================================
	// PART 1: write a base configuration file for the program to read.
	// =========================================================================
	base, err := hconf.FromMap(map[string]any{
		"server": map[string]any{
			"host": "localhost",
			"port": 8080,
		},
		"debug": false,
	}, hconf.Careful)
	if err != nil {
		log.Fatal(err)
	}

	path := filepath.Join(dir, configFile)
	if err := base.Save(path); err != nil {
		log.Fatal(err)
	}

	// =========================================================================
	// PART 2: load it back, layering command-line style overrides on top.
	// =========================================================================
	cfg, err := hconf.FromArgs([]string{
		"--config", path,
		"server.port=9090",
		"debug=true",
	})
	if err != nil {
		log.Fatal(err)
	}

	host, _ := cfg.String("server.host")
	port, _ := cfg.Int64("server.port")
	debug, _ := cfg.Bool("debug")
	fmt.Printf("server: %s:%d (debug=%v)\n", host, port, debug)

	// =========================================================================
	// PART 3: careful trees guard against accidental overwrites.
	// =========================================================================
	if err := cfg.Set("server.host", "example.com"); err != nil {
		fmt.Println("set rejected:", err)
	}
	old, err := cfg.Overwrite("server.host", "example.com")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("overwrote host, old value:", old)

	// =========================================================================
	// PART 4: flatten for logging or diffing, freeze for safe sharing.
	// =========================================================================
	for _, entry := range cfg.Flatten(".") {
		fmt.Printf("  %s = %v\n", entry.Key, entry.Value)
	}

	frozen := cfg.Freeze()
	digest, err := frozen.Hash()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("frozen digest: %016x\n", digest)
}
