package scenarioconfig

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// CredentialsConfig is the `credentials` document section.
type CredentialsConfig struct {
	Username string  `yaml:"username"`
	Password *string `yaml:"password,omitempty"`
}

// ServerConfig is the `server` document section.
type ServerConfig struct {
	Host string  `yaml:"host"`
	Port *uint16 `yaml:"port,omitempty"`
}

// OnFailConfig accepts either a single task id or a list of task ids
// for the `on-fail` field, via yaml.Node-based shorthand decoding for
// this ambiguous field.
type OnFailConfig []string

func (o *OnFailConfig) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var single string
		if err := node.Decode(&single); err != nil {
			return err
		}
		*o = OnFailConfig{single}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*o = OnFailConfig(list)
		return nil
	default:
		return fmt.Errorf("on-fail must be a task id or a list of task ids")
	}
}

// StepConfig is one entry of the `execute.steps` list.
type StepConfig struct {
	Task   string       `yaml:"task"`
	OnFail OnFailConfig `yaml:"on-fail,omitempty"`
}

// ExecuteConfig is the `execute` document section.
type ExecuteConfig struct {
	Steps []StepConfig `yaml:"steps"`
}

// RequiredVariableConfig is one entry of `variables.required`.
type RequiredVariableConfig struct {
	Type     string  `yaml:"type"`
	Format   string  `yaml:"format,omitempty"`
	Label    *string `yaml:"label,omitempty"`
	ReadOnly bool    `yaml:"read_only,omitempty"`
}

// SpecialConfig is the `variables.special` document section. Only
// "timestamp" is recognized.
type SpecialConfig struct {
	Timestamp *string `yaml:"timestamp,omitempty"`
}

// VariablesConfig is the `variables` document section.
type VariablesConfig struct {
	Required map[string]RequiredVariableConfig `yaml:"required,omitempty"`
	Defined  map[string]string                 `yaml:"defined,omitempty"`
	Special  SpecialConfig                     `yaml:"special,omitempty"`
}

// TaskConfig is one entry of the `tasks` map: a tagged union
// discriminated by `type`, {RemoteSudo, SftpCopy}. The discriminant is
// case-sensitive: an unrecognized or mis-cased type fails decoding.
type TaskConfig struct {
	Description     string
	ErrorMessage     string
	Type             string
	Command          string // RemoteSudo only
	SourcePath       string // SftpCopy only
	DestinationPath  string // SftpCopy only
}

func (t *TaskConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Description     string `yaml:"description"`
		ErrorMessage     string `yaml:"error_message"`
		Type             string `yaml:"type"`
		Command          string `yaml:"command"`
		SourcePath       string `yaml:"source_path"`
		DestinationPath  string `yaml:"destination_path"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	switch raw.Type {
	case "RemoteSudo":
		if raw.Command == "" {
			return fmt.Errorf("task type RemoteSudo requires a command")
		}
	case "SftpCopy":
		if raw.SourcePath == "" || raw.DestinationPath == "" {
			return fmt.Errorf("task type SftpCopy requires source_path and destination_path")
		}
	default:
		return fmt.Errorf("unknown task type %q", raw.Type)
	}

	*t = TaskConfig{
		Description:     raw.Description,
		ErrorMessage:    raw.ErrorMessage,
		Type:            raw.Type,
		Command:         raw.Command,
		SourcePath:      raw.SourcePath,
		DestinationPath: raw.DestinationPath,
	}
	return nil
}

// TasksConfig is the `tasks` document section: an id → task mapping.
type TasksConfig map[string]TaskConfig

// PartialScenarioConfig is one document in the parent chain: every
// section is optional, to be folded with its ancestors.
type PartialScenarioConfig struct {
	Parent      *string            `yaml:"parent,omitempty"`
	Credentials *CredentialsConfig `yaml:"credentials,omitempty"`
	Server      *ServerConfig      `yaml:"server,omitempty"`
	Execute     *ExecuteConfig     `yaml:"execute,omitempty"`
	Variables   *VariablesConfig   `yaml:"variables,omitempty"`
	Tasks       *TasksConfig       `yaml:"tasks,omitempty"`
}

// ScenarioConfig is the fully merged, validated effective
// configuration: credentials, server, execute, and tasks are
// mandatory; variables defaults to its zero value when absent.
type ScenarioConfig struct {
	Credentials CredentialsConfig
	Server      ServerConfig
	Execute     ExecuteConfig
	Variables   VariablesConfig
	Tasks       TasksConfig
}
