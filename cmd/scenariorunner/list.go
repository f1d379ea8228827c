package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adest/scenariorunner/scenarioconfig"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tasks declared in a scenario file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagConfig == "" {
			return fmt.Errorf("missing required flag --config")
		}
		config, err := scenarioconfig.Load(flagConfig)
		if err != nil {
			return err
		}
		printTasks(config)
		return nil
	},
}

func printTasks(config *scenarioconfig.ScenarioConfig) {
	if len(config.Tasks) == 0 {
		fmt.Println("no tasks found")
		return
	}
	for id, task := range config.Tasks {
		fmt.Printf("%-20s [%s] %s\n", id, task.Type, task.Description)
	}
}
