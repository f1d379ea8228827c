package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//go:embed example_scenario.yaml
var exampleScenarioYAML []byte

var (
	initForce bool
	initOut   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter scenario file",
	Long: "Write a commented example scenario file covering a RemoteSudo task,\n" +
		"an on-fail step, and a required variable, so the tool is immediately\n" +
		"runnable: scenariorunner -c scenario.yaml who=world",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := initOut
		if out == "" {
			out = "scenario.yaml"
		}
		if !initForce {
			if _, err := os.Stat(out); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", out)
			}
		}
		if err := os.WriteFile(out, exampleScenarioYAML, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", out)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing file")
	initCmd.Flags().StringVar(&initOut, "out", "", "output path (default: scenario.yaml)")
}
