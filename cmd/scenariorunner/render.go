package main

import (
	"fmt"

	"github.com/adest/scenariorunner/scenario"
)

// renderEvent prints a human-readable line for an event. Scenario
// start/completion, step and on-fail step starts, commands, RemoteSudo
// output (truncated), copy start/completion and errors are always
// shown; session creation, step and command completion, and SftpCopy
// progress are only printed verbosely.
func renderEvent(e scenario.Event, verbose bool) {
	switch ev := e.(type) {
	case scenario.ScenarioStartedEvent:
		fmt.Println("scenario started")
	case scenario.SessionCreatedEvent:
		if verbose {
			fmt.Println("session established")
		}
	case scenario.StepStartedEvent:
		fmt.Printf("[%d/%d] %s\n", ev.Index+1, ev.Total, ev.Description)
	case scenario.StepCompletedEvent:
		if verbose {
			fmt.Println("  step completed")
		}
	case scenario.RemoteSudoStartedEvent:
		fmt.Printf("  $ %s\n", ev.Command)
	case scenario.RemoteSudoOutputEvent:
		fmt.Print(truncateOutput(ev.Output))
	case scenario.RemoteSudoCompletedEvent:
		if verbose {
			fmt.Println("  command completed")
		}
	case scenario.SftpCopyStartedEvent:
		fmt.Printf("  copying %s -> %s\n", ev.Source, ev.Destination)
	case scenario.SftpCopyProgressEvent:
		if verbose {
			fmt.Printf("  %d/%d bytes\n", ev.Current, ev.Total)
		}
	case scenario.SftpCopyCompletedEvent:
		fmt.Printf("  copied %s -> %s\n", ev.Source, ev.Destination)
	case scenario.OnFailStepStartedEvent:
		fmt.Printf("  on-fail [%d/%d] %s\n", ev.Index+1, ev.Total, ev.Description)
	case scenario.ErrorEvent:
		fmt.Printf("error: %s\n", ev.Error)
	case scenario.ScenarioCompletedEvent:
		fmt.Println("scenario completed")
	case scenario.StepsStartedEvent, scenario.StepsCompletedEvent,
		scenario.OnFailStepsStartedEvent, scenario.OnFailStepsCompletedEvent,
		scenario.OnFailStepCompletedEvent:
		// Grouping events only, nothing to print on their own.
	}
}

// truncateOutput caps RemoteSudo output at remoteSudoOutputLimit
// characters. The engine itself emits the full output; this is purely
// a rendering concern.
func truncateOutput(output string) string {
	if len(output) <= remoteSudoOutputLimit {
		return output
	}
	return output[:remoteSudoOutputLimit] + "... (truncated)\n"
}
