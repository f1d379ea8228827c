package scenario

import "testing"

func TestNew_InjectsUsernameIntoVariables(t *testing.T) {
	server := NewServer("example.org", 0)
	creds := NewCredentials("deployer", nil)

	s, err := New(server, creds, Tasks{}, nil, nil, nil, SpecialVariables{}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Variables()["username"] != "deployer" {
		t.Errorf("username = %q, want deployer", s.Variables()["username"])
	}
}

func TestNew_UnresolvedPlaceholder_FailsConstructionNoEvents(t *testing.T) {
	server := NewServer("example.org", 0)
	creds := NewCredentials("deployer", nil)
	defined := DefinedVariables{"a": "{b}"}

	_, err := New(server, creds, Tasks{}, nil, nil, defined, SpecialVariables{}, nil)
	if err == nil {
		t.Fatal("expected construction to fail on an unresolved placeholder")
	}
}

func TestScenario_Execute_RunsStepsAgainstMockSession(t *testing.T) {
	server := NewServer("example.org", 0)
	creds := NewCredentials("deployer", nil)
	tasks := Tasks{"greet": NewRemoteSudoTask("greet", "say hello", "", "echo hi")}
	steps := Steps{{Task: tasks["greet"]}}

	s, err := New(server, creds, tasks, steps, nil, nil, SpecialVariables{}, nil)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}

	sink := &recordingSink{}
	if err := s.Execute(MockSessionFactory, sink); err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}

	names := sink.names()
	want := []string{
		"scenario_started",
		"session_created",
		"steps_started",
		"step_started",
		"remote_sudo_started",
		"remote_sudo_channel_output",
		"remote_sudo_completed",
		"step_completed",
		"steps_completed",
		"scenario_completed",
	}
	if len(names) != len(want) {
		t.Fatalf("events = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestScenario_SetVariable_OverridesBeforeExecute(t *testing.T) {
	server := NewServer("example.org", 0)
	creds := NewCredentials("deployer", nil)
	tasks := Tasks{"greet": NewRemoteSudoTask("greet", "say hello", "", "echo {who}")}
	steps := Steps{{Task: tasks["greet"]}}

	s, err := New(server, creds, tasks, steps, nil, DefinedVariables{"who": "world"}, SpecialVariables{}, nil)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	s.SetVariable("who", "overridden")

	sink := &recordingSink{}
	if err := s.Execute(MockSessionFactory, sink); err != nil {
		t.Fatalf("unexpected execution error: %v", err)
	}

	var started RemoteSudoStartedEvent
	for _, e := range sink.events {
		if se, ok := e.(RemoteSudoStartedEvent); ok {
			started = se
		}
	}
	if started.Command != "echo overridden" {
		t.Errorf("command = %q, want %q", started.Command, "echo overridden")
	}
}
