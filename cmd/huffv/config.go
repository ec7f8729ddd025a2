package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/huff-language/huffv/internal"
)

const (
	defaultLogLevel  = "info"
	defaultLogOutput = "stderr"
)

// Version is the build version, set at build time with -ldflags
var Version = internal.Version

// Config holds the application configuration
type Config struct {
	KeyPath  string
	Output   string `mapstructure:"output"`
	Template string `mapstructure:"template"`
	Log      LogConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
}

// loadConfig loads configuration from flags, environment variables, and defaults
func loadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("output", "")
	v.SetDefault("template", "")
	v.SetDefault("log.level", defaultLogLevel)
	v.SetDefault("log.output", defaultLogOutput)

	flag.StringP("output", "o", "", "save the generated contract to a file instead of stdout")
	flag.StringP("template", "t", "", "path to a custom verifier template (default: embedded template)")
	flag.StringP("log.level", "l", defaultLogLevel, "log level (debug, info, warn, error)")
	flag.String("log.output", defaultLogOutput, "log output (stdout, stderr or filepath)")

	// Configure usage information
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "huffv v%s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: huffv [flags] <verification_key.json>\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment variables are also available with the same name as flags,\n")
		fmt.Fprintf(os.Stderr, "  except for dashes (-) and dots (.) which are replaced by underscores (_).\n")
		fmt.Fprintf(os.Stderr, "  For example, HUFFV_TEMPLATE or HUFFV_LOG_LEVEL\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Print the verifier for a snarkjs verification key\n")
		fmt.Fprintf(os.Stderr, "  huffv verification_key.json\n\n")
		fmt.Fprintf(os.Stderr, "  # Write the verifier to a file using a custom template\n")
		fmt.Fprintf(os.Stderr, "  huffv -t MyTemplate.huff -o Verifier.huff verification_key.json\n")
	}

	flag.CommandLine.SortFlags = false
	flag.Parse()

	// Configure Viper to use environment variables
	v.SetEnvPrefix("HUFFV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind flags to Viper
	if err := v.BindPFlags(flag.CommandLine); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.KeyPath = flag.Arg(0)

	return cfg, nil
}

// validateConfig validates the loaded configuration
func validateConfig(cfg *Config) error {
	if cfg.KeyPath == "" {
		return fmt.Errorf("no verification key path provided")
	}
	if _, err := os.Stat(cfg.KeyPath); err != nil {
		return fmt.Errorf("cannot access verification key: %w", err)
	}
	return nil
}
