package scenario

// Steps is the ordered step sequence run by Scenario.Execute. Steps
// run strictly sequentially in declaration order; no automatic retry.
type Steps []Step

// execute drives the step sequence against an open session, dispatching
// each step to the appropriate executor and running the on-fail chain
// on failure. It implements the RunSteps/Step/RunOnFail states of the
// execution state machine (§4.5): StepsStarted/StepsCompleted are
// skipped entirely for an empty sequence.
func (steps Steps) execute(session Session, vars Variables, sink EventSink, guard *sftpGuard) error {
	if len(steps) == 0 {
		return nil
	}

	sink.Send(StepsStartedEvent{})

	total := len(steps)
	for index, step := range steps {
		sink.Send(StepStartedEvent{
			Index:       index,
			Total:       total,
			Description: step.Task.Description(),
		})

		if err := dispatch(step.Task, session, vars, sink, guard); err != nil {
			sink.Send(ErrorEvent{Error: err.Error()})

			onFailErr := step.OnFailSteps.execute(session, vars, sink, guard)
			if onFailErr != nil {
				sink.Send(ErrorEvent{Error: onFailErr.Error()})
			}

			return &StepsError{ErrorMessage: step.Task.ErrorMessage(), Err: err, OnFailErr: onFailErr}
		}

		sink.Send(StepCompletedEvent{})
	}

	sink.Send(StepsCompletedEvent{})
	return nil
}

// execute runs the recovery chain in order, dispatching each on-fail
// task exactly like a normal step but emitting the OnFailStep* event
// family. If the chain is empty, these events are skipped entirely. If
// an on-fail task itself fails, the chain aborts immediately and that
// failure is returned — the caller is responsible for ensuring the
// original step error, not this one, is what ultimately propagates,
// whether or not recovery succeeds.
func (onFail OnFailSteps) execute(session Session, vars Variables, sink EventSink, guard *sftpGuard) error {
	if len(onFail) == 0 {
		return nil
	}

	sink.Send(OnFailStepsStartedEvent{})

	total := len(onFail)
	for index, task := range onFail {
		sink.Send(OnFailStepStartedEvent{
			Index:       index,
			Total:       total,
			Description: task.Description(),
		})

		if err := dispatch(task, session, vars, sink, guard); err != nil {
			return &OnFailError{Index: index, Err: err}
		}

		sink.Send(OnFailStepCompletedEvent{})
	}

	sink.Send(OnFailStepsCompletedEvent{})
	return nil
}
