package scenario

import "fmt"

// Visitor walks event payloads field-by-field. Implementations accept
// a typed value per visited field. Unknown field names reaching
// VisitUnknown are a diagnostic, not a fatal error — callers typically
// just log them.
type Visitor interface {
	VisitString(field, value string)
	VisitUint(field string, value uint64)
	VisitInt(field string, value int64)
	VisitUnknown(field string)
}

// Visit dispatches an event to v, field by field, using the fixed
// field-name catalog: scenario.event, scenario.error, task.description,
// remote_sudo.command, remote_sudo.output, remote_sudo.exit_status,
// sftp_copy.source, sftp_copy.destination, sftp_copy.progress.current,
// sftp_copy.progress.total, step.index, steps.total, on_fail_step.index,
// on_fail_steps.total.
func Visit(e Event, v Visitor) {
	switch ev := e.(type) {
	case ScenarioStartedEvent:
		v.VisitString("scenario.event", "scenario_started")
	case SessionCreatedEvent:
		v.VisitString("scenario.event", "session_created")
	case ScenarioCompletedEvent:
		v.VisitString("scenario.event", "scenario_completed")
	case ErrorEvent:
		v.VisitString("scenario.event", "error")
		v.VisitString("scenario.error", ev.Error)
	case StepsStartedEvent:
		v.VisitString("scenario.event", "steps_started")
	case StepsCompletedEvent:
		v.VisitString("scenario.event", "steps_completed")
	case StepStartedEvent:
		v.VisitString("scenario.event", "step_started")
		v.VisitUint("step.index", uint64(ev.Index))
		v.VisitUint("steps.total", uint64(ev.Total))
		v.VisitString("task.description", ev.Description)
	case StepCompletedEvent:
		v.VisitString("scenario.event", "step_completed")
	case RemoteSudoStartedEvent:
		v.VisitString("scenario.event", "remote_sudo_started")
		v.VisitString("remote_sudo.command", ev.Command)
	case RemoteSudoOutputEvent:
		v.VisitString("scenario.event", "remote_sudo_channel_output")
		v.VisitString("remote_sudo.output", ev.Output)
	case RemoteSudoCompletedEvent:
		v.VisitString("scenario.event", "remote_sudo_completed")
	case SftpCopyStartedEvent:
		v.VisitString("scenario.event", "sftp_copy_started")
		v.VisitString("sftp_copy.source", ev.Source)
		v.VisitString("sftp_copy.destination", ev.Destination)
	case SftpCopyProgressEvent:
		v.VisitString("scenario.event", "sftp_copy_progress")
		v.VisitUint("sftp_copy.progress.current", uint64(ev.Current))
		v.VisitUint("sftp_copy.progress.total", uint64(ev.Total))
	case SftpCopyCompletedEvent:
		v.VisitString("scenario.event", "sftp_copy_completed")
		v.VisitString("sftp_copy.source", ev.Source)
		v.VisitString("sftp_copy.destination", ev.Destination)
	case OnFailStepsStartedEvent:
		v.VisitString("scenario.event", "on_fail_steps_started")
	case OnFailStepsCompletedEvent:
		v.VisitString("scenario.event", "on_fail_steps_completed")
	case OnFailStepStartedEvent:
		v.VisitString("scenario.event", "on_fail_step_started")
		v.VisitUint("on_fail_step.index", uint64(ev.Index))
		v.VisitUint("on_fail_steps.total", uint64(ev.Total))
		v.VisitString("task.description", ev.Description)
	case OnFailStepCompletedEvent:
		v.VisitString("scenario.event", "on_fail_step_completed")
	default:
		v.VisitUnknown(fmt.Sprintf("%T", ev))
	}
}
