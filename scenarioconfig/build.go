package scenarioconfig

import (
	"github.com/adest/scenariorunner/scenario"
)

// Build loads the configuration chain rooted at path and constructs a
// scenario.Scenario from it, validating the caller-supplied required
// variable values and resolving placeholders immediately.
func Build(path string, supplied map[string]string) (*scenario.Scenario, error) {
	config, err := Load(path)
	if err != nil {
		return nil, err
	}
	return FromConfig(config, supplied)
}

// FromConfig constructs a scenario.Scenario from an already-merged
// ScenarioConfig, for front-ends that compose configuration in memory
// rather than from a file.
func FromConfig(config *ScenarioConfig, supplied map[string]string) (*scenario.Scenario, error) {
	server := scenario.NewServer(config.Server.Host, portOrDefault(config.Server.Port))

	var password *string
	if config.Credentials.Password != nil {
		password = config.Credentials.Password
	}
	credentials := scenario.NewCredentials(config.Credentials.Username, password)

	tasks, err := buildTasks(config.Tasks)
	if err != nil {
		return nil, err
	}

	steps, err := buildSteps(tasks, config.Execute)
	if err != nil {
		return nil, err
	}

	required := buildRequired(config.Variables.Required)
	defined := scenario.DefinedVariables(config.Variables.Defined)
	special := buildSpecial(config.Variables.Special)

	return scenario.New(server, credentials, tasks, steps, required, defined, special, supplied)
}

func portOrDefault(port *uint16) uint16 {
	if port == nil {
		return 0
	}
	return *port
}

func buildTasks(config TasksConfig) (scenario.Tasks, error) {
	tasks := make(scenario.Tasks, len(config))
	for id, taskConfig := range config {
		switch taskConfig.Type {
		case "RemoteSudo":
			tasks[id] = scenario.NewRemoteSudoTask(id, taskConfig.Description, taskConfig.ErrorMessage, taskConfig.Command)
		case "SftpCopy":
			tasks[id] = scenario.NewSftpCopyTask(id, taskConfig.Description, taskConfig.ErrorMessage, taskConfig.SourcePath, taskConfig.DestinationPath)
		}
	}
	return tasks, nil
}

func buildSteps(tasks scenario.Tasks, config ExecuteConfig) (scenario.Steps, error) {
	steps := make(scenario.Steps, 0, len(config.Steps))
	for _, stepConfig := range config.Steps {
		step, err := scenario.NewStep(tasks, stepConfig.Task, []string(stepConfig.OnFail))
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func buildRequired(config map[string]RequiredVariableConfig) scenario.RequiredVariables {
	required := make(scenario.RequiredVariables, len(config))
	for name, v := range config {
		label := ""
		if v.Label != nil {
			label = *v.Label
		}
		required[name] = scenario.RequiredVariable{
			Type:     buildVariableType(v),
			Label:    label,
			ReadOnly: v.ReadOnly,
		}
	}
	return required
}

func buildVariableType(v RequiredVariableConfig) scenario.VariableType {
	switch v.Type {
	case "Path":
		return scenario.VariableType{Kind: scenario.VariableKindPath}
	case "Timestamp":
		return scenario.VariableType{Kind: scenario.VariableKindTimestamp, Format: v.Format}
	default:
		return scenario.VariableType{Kind: scenario.VariableKindString}
	}
}

func buildSpecial(config SpecialConfig) scenario.SpecialVariables {
	if config.Timestamp == nil {
		return scenario.SpecialVariables{}
	}
	return scenario.SpecialVariables{TimestampFormat: *config.Timestamp, HasTimestamp: true}
}
