package scenario

// execute runs the RemoteSudo executor algorithm against an open
// session: resolve the command template, open a channel, run the
// command, and check its exit status.
//
// RemoteSudoStarted carries the resolved command (matching the worked
// example in the operation's own testable scenarios) rather than the
// unresolved template — see DESIGN.md's "Additional decisions made
// while implementing the engine" section for the rationale.
func (t RemoteSudoTask) execute(session Session, vars Variables, sink EventSink) error {
	command, err := vars.Resolve(t.Command)
	if err != nil {
		return &RemoteSudoError{Op: "CannotResolveCommandPlaceholders", Err: err}
	}

	sink.Send(RemoteSudoStartedEvent{Command: command})

	channel, err := session.Channel()
	if err != nil {
		return &RemoteSudoError{Op: "CannotEstablishSessionChannel", Err: err}
	}

	if err := channel.Exec(command); err != nil {
		return &RemoteSudoError{Op: "CannotExecuteRemoteCommand", Err: err}
	}

	output, err := channel.ReadOutput()
	if err != nil {
		return &RemoteSudoError{Op: "CannotReadChannelOutput", Err: err}
	}
	sink.Send(RemoteSudoOutputEvent{Output: output})

	exitStatus, err := channel.ExitStatus()
	if err != nil {
		return &RemoteSudoError{Op: "CannotObtainRemoteCommandExitStatus", Err: err}
	}

	if exitStatus != 0 {
		return &RemoteSudoError{Op: "RemoteCommandFailedWithStatusCode", StatusCode: exitStatus}
	}

	sink.Send(RemoteSudoCompletedEvent{})
	return nil
}
