package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
	"github.com/b-rodrigues/tlang-sub002/pkg/tlang"
)

var replMode string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive tlang session",
	RunE:  runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&replMode, "mode", "", "evaluation mode: repl or strict (default repl)")
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mode := tlang.ModeREPL
	if replMode != "" {
		mode = tlang.Mode(replMode)
	}

	return repl(os.Stdin, os.Stdout, cfg, mode)
}

// repl drives the read-eval-print loop: accumulate lines until they
// parse as a complete program (or plainly fail), print the resulting
// value, and continue with the same threaded environment.
func repl(in io.Reader, out io.Writer, cfg Config, mode tlang.Mode) error {
	host := tlang.NewHost(out, out)
	env := host.RootEnvironment()

	scanner := bufio.NewScanner(in)
	var buf strings.Builder

	prompt := func() {
		if buf.Len() == 0 {
			fmt.Fprint(out, cfg.Prompt)
		} else {
			fmt.Fprint(out, cfg.ContinuationPrompt)
		}
	}

	prompt()
	for scanner.Scan() {
		line := scanner.Text()
		if buf.Len() > 0 {
			if needsContinuation(strings.TrimSpace(buf.String())) {
				// A trailing pipe joins onto the same line: the
				// grammar only swallows a newline before a *leading*
				// pipe, so a line break here would otherwise split
				// the pipe from its callee into two statements.
				buf.WriteByte(' ')
			} else {
				buf.WriteByte('\n')
			}
		}
		buf.WriteString(line)

		source := buf.String()
		trimmed := strings.TrimSpace(source)
		if trimmed == "" {
			buf.Reset()
			prompt()
			continue
		}
		if needsContinuation(trimmed) {
			prompt()
			continue
		}

		program, errVal := tlang.Parse(source)
		if errVal != nil {
			if isIncompleteParse(errVal) {
				prompt()
				continue
			}
			fmt.Fprintln(out, errVal.FormatForCLI())
			buf.Reset()
			prompt()
			continue
		}

		var result runtime.Value
		result, env = host.Eval(mode, env, program)
		fmt.Fprintln(out, explanationText(result))
		buf.Reset()
		prompt()
	}
	return scanner.Err()
}

// needsContinuation reports whether trimmed, read so far, ends with a
// pipe operator that must be followed by a callee on the next line.
func needsContinuation(trimmed string) bool {
	return strings.HasSuffix(trimmed, "|>") || strings.HasSuffix(trimmed, "?|>")
}

// isIncompleteParse reports whether a parse failure looks like input
// cut off mid-expression (unbalanced delimiters) rather than a genuine
// syntax error, so the REPL can ask for one more line instead of
// reporting failure.
func isIncompleteParse(e *runtime.ErrorValue) bool {
	return strings.Contains(e.Message, "got EOF") || strings.Contains(e.Message, "for EOF found")
}
