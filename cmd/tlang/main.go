package main

import (
	"fmt"
	"os"

	"github.com/b-rodrigues/tlang-sub002/cmd/tlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
