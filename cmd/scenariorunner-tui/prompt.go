package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/huh"

	"github.com/adest/scenariorunner/scenarioconfig"
)

// promptForVariables builds an interactive huh form covering every
// required variable the config declares, used when the caller supplied
// no KEY=VALUE overrides on the command line.
func promptForVariables(config *scenarioconfig.ScenarioConfig) (map[string]string, error) {
	ids := make([]string, 0, len(config.Variables.Required))
	for id := range config.Variables.Required {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	values := make(map[string]*string, len(ids))
	fields := make([]huh.Field, 0, len(ids))
	for _, id := range ids {
		required := config.Variables.Required[id]
		title := id
		if required.Label != nil {
			title = *required.Label
		}
		value := new(string)
		values[id] = value
		fields = append(fields, huh.NewInput().Title(title).Value(value))
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("interactive prompt: %w", err)
	}

	supplied := make(map[string]string, len(ids))
	for id, value := range values {
		supplied[id] = *value
	}
	return supplied, nil
}
