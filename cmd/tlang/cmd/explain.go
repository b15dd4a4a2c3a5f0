package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/b-rodrigues/tlang-sub002/internal/runtime"
	"github.com/b-rodrigues/tlang-sub002/pkg/tlang"
)

var explainJSON bool

var explainCmd = &cobra.Command{
	Use:   "explain <expr>",
	Short: "Evaluate an expression and show its structured explanation",
	Args:  cobra.ExactArgs(1),
	RunE:  runExplain,
}

func init() {
	rootCmd.AddCommand(explainCmd)
	explainCmd.Flags().BoolVar(&explainJSON, "json", false, "print the explanation as JSON")
}

func runExplain(_ *cobra.Command, args []string) error {
	host := tlang.NewHost(os.Stdout, os.Stderr)
	env := host.RootEnvironment()

	result, _ := host.ParseAndEval(tlang.ModeREPL, env, args[0])

	if explainJSON {
		doc, err := explanationJSON(result)
		if err != nil {
			return err
		}
		fmt.Println(string(pretty.Pretty([]byte(doc))))
		return nil
	}

	fmt.Println(explanationText(result))
	return nil
}

func explanationJSON(v runtime.Value) (string, error) {
	doc := "{}"
	var err error
	doc, err = sjson.Set(doc, "type", v.Type())
	if err != nil {
		return "", err
	}
	doc, err = sjson.Set(doc, "value", v.String())
	if err != nil {
		return "", err
	}
	if e, ok := v.(*runtime.ErrorValue); ok {
		if doc, err = sjson.Set(doc, "code", string(e.Code)); err != nil {
			return "", err
		}
		if doc, err = sjson.Set(doc, "message", e.Message); err != nil {
			return "", err
		}
		for _, c := range e.Context {
			if doc, err = sjson.Set(doc, "context."+c.Key, c.Value.String()); err != nil {
				return "", err
			}
		}
	}
	return doc, nil
}

func explanationText(v runtime.Value) string {
	if e, ok := v.(*runtime.ErrorValue); ok {
		return e.FormatForCLI()
	}
	return fmt.Sprintf("%s: %s", v.Type(), v.String())
}
