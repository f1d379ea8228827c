package scenario

// Step holds a task plus an optional ordered on-fail chain. Both are
// bound from task ids against the registry at construction time — see
// NewStep.
type Step struct {
	Task         Task
	OnFailSteps  OnFailSteps
}

// NewStep binds a step's task id and on-fail ids against the task
// registry, failing if any reference does not resolve.
func NewStep(tasks Tasks, taskID string, onFailIDs []string) (Step, error) {
	task, ok := tasks.Get(taskID)
	if !ok {
		return Step{}, &StepError{Op: "bind task", Err: &CannotCreateTaskFromConfigError{TaskID: taskID}}
	}

	onFail, err := NewOnFailSteps(tasks, onFailIDs)
	if err != nil {
		return Step{}, &StepError{Op: "bind on-fail steps", Err: err}
	}

	return Step{Task: task, OnFailSteps: onFail}, nil
}

// OnFailSteps is an ordered sequence of tasks cloned from the registry
// at binding time. Empty when the step declares no recovery.
type OnFailSteps []Task

// NewOnFailSteps resolves each on-fail task id against the registry.
// A nil or empty slice of ids yields an empty OnFailSteps.
func NewOnFailSteps(tasks Tasks, ids []string) (OnFailSteps, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	steps := make(OnFailSteps, 0, len(ids))
	for _, id := range ids {
		task, ok := tasks.Get(id)
		if !ok {
			return nil, &InvalidOnFailStepError{TaskID: id}
		}
		steps = append(steps, task)
	}
	return steps, nil
}
