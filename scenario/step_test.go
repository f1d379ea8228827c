package scenario

import "testing"

func TestNewStep_UnknownTaskID(t *testing.T) {
	_, err := NewStep(Tasks{}, "missing", nil)
	if err == nil {
		t.Fatal("expected an error for an unresolvable task id")
	}
}

func TestNewStep_UnknownOnFailID(t *testing.T) {
	tasks := Tasks{"greet": NewRemoteSudoTask("greet", "", "", "echo hi")}
	_, err := NewStep(tasks, "greet", []string{"missing"})
	if err == nil {
		t.Fatal("expected an error for an unresolvable on-fail task id")
	}
}

func TestNewStep_Success(t *testing.T) {
	tasks := Tasks{
		"greet":   NewRemoteSudoTask("greet", "", "", "echo hi"),
		"cleanup": NewRemoteSudoTask("cleanup", "", "", "rm -rf /tmp/x"),
	}
	step, err := NewStep(tasks, "greet", []string{"cleanup"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if step.Task.ID() != "greet" {
		t.Errorf("task id = %q, want greet", step.Task.ID())
	}
	if len(step.OnFailSteps) != 1 || step.OnFailSteps[0].ID() != "cleanup" {
		t.Errorf("on-fail steps = %+v, want [cleanup]", step.OnFailSteps)
	}
}

func TestNewOnFailSteps_EmptyIDs(t *testing.T) {
	steps, err := NewOnFailSteps(Tasks{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(steps) != 0 {
		t.Errorf("steps = %v, want empty", steps)
	}
}
