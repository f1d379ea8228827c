package scenario

// Scenario is the complete, constructed, executable unit: server,
// credentials, tasks, steps, and resolved variables. Immutable after
// construction except for the resolved variable values, which a
// front-end may mutate before Execute.
type Scenario struct {
	server      Server
	credentials Credentials
	tasks       Tasks
	steps       Steps
	variables   Variables
}

// New constructs a Scenario, validating and resolving variables
// immediately: construction fails with the same error Variables
// composition would (ValidationFailedError, UnresolvedValuesError) and
// emits no events at all, since the event stream only exists once
// Execute begins.
//
// credentials.username is injected into the defined variable map
// under the key "username" before resolution runs, so {username} is
// always available as a placeholder without explicit configuration.
func New(server Server, credentials Credentials, tasks Tasks, steps Steps, required RequiredVariables, defined DefinedVariables, special SpecialVariables, supplied map[string]string) (*Scenario, error) {
	merged := make(DefinedVariables, len(defined)+1)
	for k, v := range defined {
		merged[k] = v
	}
	merged["username"] = credentials.Username()

	variables, err := NewVariables(required, merged, special, supplied)
	if err != nil {
		return nil, err
	}

	return &Scenario{
		server:      server,
		credentials: credentials,
		tasks:       tasks,
		steps:       steps,
		variables:   variables,
	}, nil
}

func (s *Scenario) Server() Server { return s.server }

func (s *Scenario) Credentials() Credentials { return s.credentials }

func (s *Scenario) Tasks() Tasks { return s.tasks }

func (s *Scenario) Steps() Steps { return s.steps }

// Variables returns the resolved variable mapping.
func (s *Scenario) Variables() Variables { return s.variables }

// SetVariable mutates a single resolved variable value before Execute
// is called — the one way a front-end may change an otherwise frozen
// Scenario.
func (s *Scenario) SetVariable(name, value string) {
	s.variables[name] = value
}

// SessionFactory opens a Session for the scenario's server and
// credentials. LiveSessionFactory and MockSessionFactory are the two
// implementations the engine is shipped with; the engine itself never
// knows which is in use.
type SessionFactory func(server Server, credentials Credentials) (Session, error)

// LiveSessionFactory opens a real SSH/SFTP session.
func LiveSessionFactory(opts LiveSessionOptions) SessionFactory {
	return func(server Server, credentials Credentials) (Session, error) {
		return NewLiveSession(server, credentials, opts)
	}
}

// MockSessionFactory opens a mock session with pre-seeded responses.
func MockSessionFactory(server Server, credentials Credentials) (Session, error) {
	return NewMockSession(), nil
}

// Execute opens a session via factory and runs the step sequence,
// emitting events to sink at every observable transition. sink may be
// nil, in which case events are discarded.
//
// Execute never panics on expected failures: any I/O, parsing, or
// validation problem surfaces as a typed *ScenarioError wrapping the
// layer-specific cause.
func (s *Scenario) Execute(factory SessionFactory, sink EventSink) error {
	if sink == nil {
		sink = noopEventSink{}
	}

	sink.Send(ScenarioStartedEvent{})

	session, err := factory(s.server, s.credentials)
	if err != nil {
		wrapped := &ScenarioError{Err: err}
		sink.Send(ErrorEvent{Error: wrapped.Error()})
		return wrapped
	}
	defer session.Close()

	sink.Send(SessionCreatedEvent{})

	guard := &sftpGuard{}
	if err := s.steps.execute(session, s.variables, sink, guard); err != nil {
		wrapped := &ScenarioError{Err: err}
		sink.Send(ErrorEvent{Error: wrapped.Error()})
		return wrapped
	}

	sink.Send(ScenarioCompletedEvent{})
	return nil
}
