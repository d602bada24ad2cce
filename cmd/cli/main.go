package main

import (
	"fmt"
	"os"

	"github.com/aarnio/casedesk/cmd/cli/cases"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	// A .env file is optional outside development.
	_ = godotenv.Load()
	rootCmd.AddGroup(cases.Group)
	rootCmd.AddCommand(cases.Export)
	rootCmd.AddCommand(cases.Import)
}

var rootCmd = &cobra.Command{
	Use:  "casedesk-cli",
	Long: `Command line utilities for Case Desk`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
