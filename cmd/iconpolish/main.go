package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "iconpolish <input-file>",
	Short:         "Add rounded corners and a bottom shadow to embedded C-array icons",
	Args:          cobra.ExactArgs(1),
	RunE:          runApply,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
