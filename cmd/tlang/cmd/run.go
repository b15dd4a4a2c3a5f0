package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
	"github.com/b-rodrigues/tlang-sub002/pkg/tlang"
)

var (
	runUnsafe bool
	runMode   string
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a tlang script",
	Long: `Execute a tlang script file.

Scripts default to strict mode, which requires every top-level lambda
to carry full parameter/return type annotations, and must define at
least one pipeline unless --unsafe is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runUnsafe, "unsafe", false, "allow scripts that do not build a pipeline")
	runCmd.Flags().StringVar(&runMode, "mode", "", "evaluation mode: repl or strict (default from .tlangrc.yaml, else strict)")
}

func runScript(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mode := tlang.Mode(cfg.DefaultMode)
	if mode == "" {
		mode = tlang.ModeStrict
	}
	if runMode != "" {
		mode = tlang.Mode(runMode)
	}

	program, errVal := tlang.Parse(string(content))
	if errVal != nil {
		exitWithError("%s", errVal.FormatForCLI())
	}

	if !runUnsafe && !cfg.Unsafe && !tlang.HasPipelineDefinition(program) {
		exitWithError("%s does not build a pipeline (pass --unsafe to run it anyway)", filename)
	}

	host := tlang.NewHost(os.Stdout, os.Stderr)
	env := host.RootEnvironment()

	result, _ := host.Eval(mode, env, program)
	if e, ok := result.(*runtime.ErrorValue); ok {
		exitWithError("%s", e.FormatForCLI())
	}
	return nil
}
