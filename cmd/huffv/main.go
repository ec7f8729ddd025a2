package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/huff-language/huffv/log"
	"github.com/huff-language/huffv/verifier"
	"github.com/huff-language/huffv/vkey"
)

func main() {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logging
	log.Init(cfg.Log.Level, cfg.Log.Output, nil)

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		flag.Usage()
		log.Fatalf("Invalid configuration: %v", err)
	}

	data, err := os.ReadFile(cfg.KeyPath)
	if err != nil {
		log.Fatalf("Failed to read verification key: %v", err)
	}
	vk, err := vkey.Unmarshal(data)
	if err != nil {
		log.Fatalf("Failed to parse verification key: %v", err)
	}
	log.Debugw("verification key parsed",
		"protocol", vk.Protocol,
		"curve", vk.Curve,
		"nPublic", vk.NPublic,
		"ics", vk.NumInputCommitments())

	// The IC list length is authoritative; nPublic is informational only.
	if n := vk.NumInputCommitments(); n != vk.NPublic+1 {
		log.Warnw("nPublic does not match the IC list length, using the list length",
			"nPublic", vk.NPublic, "ics", n)
	}

	template := verifier.DefaultTemplate
	if cfg.Template != "" {
		t, err := os.ReadFile(cfg.Template)
		if err != nil {
			log.Fatalf("Failed to read template: %v", err)
		}
		template = string(t)
	}

	contract, err := verifier.Generate(vk, template)
	if err != nil {
		log.Fatalf("Failed to generate verifier: %v", err)
	}

	if cfg.Output == "" {
		fmt.Println(contract)
		return
	}
	if err := os.WriteFile(cfg.Output, []byte(contract), 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	log.Infow("verifier contract written", "path", cfg.Output, "bytes", len(contract))
}
