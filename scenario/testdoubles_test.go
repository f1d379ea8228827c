package scenario

import "bytes"

// recordingSink collects every event sent to it, for assertions in tests.
type recordingSink struct {
	events []Event
}

func (s *recordingSink) Send(e Event) {
	s.events = append(s.events, e)
}

func (s *recordingSink) names() []string {
	names := make([]string, len(s.events))
	for i, e := range s.events {
		names[i] = eventName(e)
	}
	return names
}

func eventName(e Event) string {
	var v nameVisitor
	Visit(e, &v)
	return v.name
}

type nameVisitor struct {
	name string
}

func (v *nameVisitor) VisitString(field, value string) {
	if field == "scenario.event" {
		v.name = value
	}
}
func (v *nameVisitor) VisitUint(field string, value uint64) {}
func (v *nameVisitor) VisitInt(field string, value int64)   {}
func (v *nameVisitor) VisitUnknown(field string)            {}

// fakeChannel is a test double for Channel with scripted responses.
// exitStatusFor, when it has an entry for the last executed command,
// overrides exitStatus for that command.
type fakeChannel struct {
	execErr       error
	output        string
	readErr       error
	exitStatus    int
	exitStatusFor map[string]int
	statusErr     error
	lastCommand   string
}

func (c *fakeChannel) Exec(command string) error {
	c.lastCommand = command
	return c.execErr
}

func (c *fakeChannel) ReadOutput() (string, error) {
	if c.readErr != nil {
		return "", c.readErr
	}
	return c.output, nil
}

func (c *fakeChannel) ExitStatus() (int, error) {
	if c.statusErr != nil {
		return 0, c.statusErr
	}
	if status, ok := c.exitStatusFor[c.lastCommand]; ok {
		return status, nil
	}
	return c.exitStatus, nil
}

// fakeWriter records bytes written to it.
type fakeWriter struct {
	buf     bytes.Buffer
	writeErr error
}

func (w *fakeWriter) Write(p []byte) (int, error) {
	if w.writeErr != nil {
		return 0, w.writeErr
	}
	return w.buf.Write(p)
}

// fakeSftpHandle is a test double for SftpHandle.
type fakeSftpHandle struct {
	createErr error
	writer    *fakeWriter
}

func (h *fakeSftpHandle) Create(path string) (Writer, error) {
	if h.createErr != nil {
		return nil, h.createErr
	}
	if h.writer == nil {
		h.writer = &fakeWriter{}
	}
	return h.writer, nil
}

// fakeSession is a test double for Session.
type fakeSession struct {
	channel    *fakeChannel
	channelErr error
	sftp       *fakeSftpHandle
	sftpErr    error
	closed     bool
}

func (s *fakeSession) Channel() (Channel, error) {
	if s.channelErr != nil {
		return nil, s.channelErr
	}
	return s.channel, nil
}

func (s *fakeSession) Sftp() (SftpHandle, error) {
	if s.sftpErr != nil {
		return nil, s.sftpErr
	}
	return s.sftp, nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}
