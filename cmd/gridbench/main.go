// Command gridbench runs repeated resolver generations and reports
// success rate, timing, and retry counts across a batch of trials.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gridbench",
		Short: "Benchmark harness for the gridwfc resolver",
	}
	root.AddCommand(newRunCmd())
	return root
}
