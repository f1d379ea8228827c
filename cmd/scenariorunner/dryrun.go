package main

import (
	"fmt"
	"sort"

	"github.com/adest/scenariorunner/scenario"
)

// printDryRun prints the resolved plan for a scenario without
// connecting to anything: server, credentials (password redacted),
// resolved variables, and the step sequence with its on-fail chains.
func printDryRun(s *scenario.Scenario) {
	fmt.Printf("[dry-run] target: %s@%s:%d\n", s.Credentials().Username(), s.Server().Host(), s.Server().Port())

	fmt.Println("[dry-run] variables:")
	vars := s.Variables()
	for _, k := range sortedVariableKeys(vars) {
		fmt.Printf("  %s=%s\n", k, vars[k])
	}

	fmt.Println("[dry-run] steps:")
	for i, step := range s.Steps() {
		fmt.Printf("  [%d] %s\n", i, describeTask(step.Task))
		for _, onFail := range step.OnFailSteps {
			fmt.Printf("        on-fail: %s\n", describeTask(onFail))
		}
	}
}

func describeTask(t scenario.Task) string {
	switch task := t.(type) {
	case scenario.RemoteSudoTask:
		return fmt.Sprintf("%s: remote-sudo %q", task.ID(), task.Command)
	case scenario.SftpCopyTask:
		return fmt.Sprintf("%s: sftp-copy %s -> %s", task.ID(), task.SourcePath, task.DestinationPath)
	default:
		return t.ID()
	}
}

func sortedVariableKeys(vars scenario.Variables) []string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
