package main

import (
	"fmt"
	"os"
	"regexp"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adest/scenariorunner/pkg/lib"
	"github.com/adest/scenariorunner/scenario"
	"github.com/adest/scenariorunner/scenarioconfig"
)

func main() {
	configPath, pick, args := parseArgs(os.Args[1:])
	if configPath == "" {
		lib.Exit(fmt.Errorf("usage: scenariorunner-tui -c scenario.yaml [--pick] [KEY=VALUE ...]"))
	}

	config, err := scenarioconfig.Load(configPath)
	if err != nil {
		lib.Exit(err)
	}

	supplied := splitVariableArgs(args)
	if len(supplied) == 0 && len(config.Variables.Required) > 0 {
		supplied, err = promptForVariables(config)
		if err != nil {
			lib.Exit(err)
		}
	}

	if pick {
		id, err := pickTask(config)
		if err != nil {
			lib.Exit(err)
		}
		config = narrowToTask(config, id)
	}

	s, err := scenarioconfig.FromConfig(config, supplied)
	if err != nil {
		lib.Exit(err)
	}

	sink := scenario.NewChannelEventSink(64, nil)
	m := newModel(s)

	program := tea.NewProgram(m)

	go func() {
		execErr := s.Execute(scenario.LiveSessionFactory(scenario.LiveSessionOptions{}), sink)
		sink.Close()
		program.Send(executionDoneMsg{err: execErr})
	}()
	go pumpEvents(program, sink)

	if _, err := program.Run(); err != nil {
		lib.Exit(err)
	}
}

// pumpEvents forwards scenario events into the bubbletea program as
// messages, so the model never touches the channel directly.
func pumpEvents(program *tea.Program, sink *scenario.ChannelEventSink) {
	for e := range sink.Events() {
		program.Send(scenarioEventMsg{event: e})
	}
}

var variableArgRe = regexp.MustCompile(`^([A-Za-z0-9_][A-Za-z0-9_-]*)=(.*)$`)

func splitVariableArgs(args []string) map[string]string {
	supplied := map[string]string{}
	for _, arg := range args {
		if m := variableArgRe.FindStringSubmatch(arg); m != nil {
			supplied[m[1]] = m[2]
		}
	}
	return supplied
}

// parseArgs is a minimal flag scan: this front-end favors a small
// number of flags over pulling in cobra a second time for what the
// primary scenariorunner binary already parses richly.
func parseArgs(args []string) (configPath string, pick bool, rest []string) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-c", "--config":
			if i+1 < len(args) {
				configPath = args[i+1]
				i++
			}
		case "--pick":
			pick = true
		default:
			rest = append(rest, args[i])
		}
	}
	return configPath, pick, rest
}

func narrowToTask(config *scenarioconfig.ScenarioConfig, taskID string) *scenarioconfig.ScenarioConfig {
	narrowed := *config
	narrowed.Execute = scenarioconfig.ExecuteConfig{
		Steps: []scenarioconfig.StepConfig{{Task: taskID}},
	}
	return &narrowed
}
