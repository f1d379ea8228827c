package scenario

// Event is the closed set of structured events the engine emits at
// every observable transition. Every concrete event type implements
// isEvent, sealing the set.
type Event interface {
	isEvent()
}

type eventBase struct{}

func (eventBase) isEvent() {}

type ScenarioStartedEvent struct{ eventBase }
type SessionCreatedEvent struct{ eventBase }
type ScenarioCompletedEvent struct{ eventBase }

type ErrorEvent struct {
	eventBase
	Error string
}

type StepsStartedEvent struct{ eventBase }
type StepsCompletedEvent struct{ eventBase }

type StepStartedEvent struct {
	eventBase
	Index       int
	Total       int
	Description string
}

type StepCompletedEvent struct{ eventBase }

type RemoteSudoStartedEvent struct {
	eventBase
	Command string
}

type RemoteSudoOutputEvent struct {
	eventBase
	Output string
}

type RemoteSudoCompletedEvent struct{ eventBase }

type SftpCopyStartedEvent struct {
	eventBase
	Source      string
	Destination string
}

type SftpCopyProgressEvent struct {
	eventBase
	Current int64
	Total   int64
}

type SftpCopyCompletedEvent struct {
	eventBase
	Source      string
	Destination string
}

type OnFailStepsStartedEvent struct{ eventBase }
type OnFailStepsCompletedEvent struct{ eventBase }

type OnFailStepStartedEvent struct {
	eventBase
	Index       int
	Total       int
	Description string
}

type OnFailStepCompletedEvent struct{ eventBase }

// EventSink receives events emitted during execution. Implementations
// must not block; Send is called synchronously from the engine's
// single execution goroutine.
type EventSink interface {
	Send(Event)
}

// ChannelEventSink delivers events over a buffered channel without
// ever blocking the emitter: if the channel is full, the event is
// dropped and the onDropped callback given to NewChannelEventSink is
// invoked (for example to write a warning to standard error), or the
// event is dropped silently when that callback is nil. A lost event
// must not affect execution.
type ChannelEventSink struct {
	events  chan Event
	dropped func(Event)
}

// NewChannelEventSink builds a sink with the given buffer capacity.
// onDropped, if non-nil, is invoked (synchronously, from the emitting
// goroutine) whenever the buffer is full and an event is dropped.
func NewChannelEventSink(capacity int, onDropped func(Event)) *ChannelEventSink {
	return &ChannelEventSink{
		events:  make(chan Event, capacity),
		dropped: onDropped,
	}
}

func (s *ChannelEventSink) Send(e Event) {
	select {
	case s.events <- e:
	default:
		if s.dropped != nil {
			s.dropped(e)
		}
	}
}

// Events returns the receive side of the channel for consumers to range over.
func (s *ChannelEventSink) Events() <-chan Event {
	return s.events
}

// Close closes the underlying channel. Callers must ensure no further
// Send calls occur after Close.
func (s *ChannelEventSink) Close() {
	close(s.events)
}

// noopEventSink discards every event; used when Scenario.Execute is
// called with a nil sink.
type noopEventSink struct{}

func (noopEventSink) Send(Event) {}
