package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/adest/scenariorunner/scenarioconfig"
)

// runInteractivePrompt asks for every required variable the config
// declares, one line at a time, for use when no KEY=VALUE arguments
// were supplied on the command line.
func runInteractivePrompt(config *scenarioconfig.ScenarioConfig) (map[string]string, error) {
	if len(config.Variables.Required) == 0 {
		return nil, nil
	}

	rl, err := readline.New("> ")
	if err != nil {
		return nil, fmt.Errorf("interactive: %w", err)
	}
	defer rl.Close()

	ids := make([]string, 0, len(config.Variables.Required))
	for id := range config.Variables.Required {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	supplied := make(map[string]string, len(ids))
	for _, id := range ids {
		required := config.Variables.Required[id]
		prompt := id
		if required.Label != nil {
			prompt = *required.Label
		}
		rl.SetPrompt(fmt.Sprintf("%s: ", prompt))
		line, err := rl.Readline()
		if err != nil {
			return nil, fmt.Errorf("interactive: %w", err)
		}
		supplied[id] = strings.TrimSpace(line)
	}
	return supplied, nil
}
