package cmd

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Config is the optional `.tlangrc.yaml` a user can drop in their
// working directory to change the REPL prompts and the run command's
// default mode without passing flags every time.
type Config struct {
	Prompt             string `yaml:"prompt"`
	ContinuationPrompt string `yaml:"continuation_prompt"`
	DefaultMode        string `yaml:"default_mode"`
	Unsafe             bool   `yaml:"unsafe"`
}

func defaultConfig() Config {
	return Config{
		Prompt:             "T> ",
		ContinuationPrompt: ".. ",
		DefaultMode:        "strict",
	}
}

// loadConfig reads `.tlangrc.yaml` from the current directory if it
// exists, layering its fields over the defaults. A missing file is not
// an error; a malformed one is.
func loadConfig() (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(".tlangrc.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading .tlangrc.yaml: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing .tlangrc.yaml: %w", err)
	}
	return cfg, nil
}

var rootCmd = &cobra.Command{
	Use:   "tlang",
	Short: "tlang interpreter and REPL",
	Long: `tlang is a small, R/dplyr-flavored expression language: dataframes,
pipes, lambdas, non-standard evaluation over $column references,
structured errors, and explicit NA.

Running tlang with no subcommand starts the REPL.`,
	Version: Version,
	RunE: func(c *cobra.Command, args []string) error {
		return runRepl(c, args)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
