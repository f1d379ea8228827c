package main

import (
	"fmt"
	"sort"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/adest/scenariorunner/scenarioconfig"
)

// pickTask lets the operator fuzzy-select a single declared task to
// run ad hoc, bypassing the configured step sequence entirely.
func pickTask(config *scenarioconfig.ScenarioConfig) (string, error) {
	ids := make([]string, 0, len(config.Tasks))
	for id := range config.Tasks {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) == 0 {
		return "", fmt.Errorf("no tasks declared in scenario")
	}

	idx, err := fuzzyfinder.Find(
		ids,
		func(i int) string {
			task := config.Tasks[ids[i]]
			return fmt.Sprintf("%s [%s] %s", ids[i], task.Type, task.Description)
		},
		fuzzyfinder.WithPromptString("select a task to run: "),
	)
	if err != nil {
		return "", fmt.Errorf("task picker: %w", err)
	}
	return ids[idx], nil
}
