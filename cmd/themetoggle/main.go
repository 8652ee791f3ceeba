// Command themetoggle runs the dark/light theme switcher.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/themetoggle/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
