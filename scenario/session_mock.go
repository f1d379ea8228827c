package scenario

import (
	"time"
)

// mockDelay is the small artificial delay every mock operation sleeps
// for, so a pipeline exercised against MockSession produces a realistic
// sequence of events without a remote host.
const mockDelay = 100 * time.Millisecond

// mockOutput is the fixed command output every mock channel returns.
const mockOutput = "Mock command output\nLine 1\nLine 2\nLine 3\n"

// MockSession returns pre-seeded success responses with small
// artificial delays, used in development to exercise the pipeline
// without a remote host.
type MockSession struct{}

// NewMockSession builds a MockSession. Connecting is simulated with a
// short sleep, matching the real session's handshake latency.
func NewMockSession() *MockSession {
	time.Sleep(mockDelay)
	return &MockSession{}
}

func (s *MockSession) Channel() (Channel, error) {
	time.Sleep(mockDelay)
	return &mockChannel{}, nil
}

func (s *MockSession) Sftp() (SftpHandle, error) {
	time.Sleep(mockDelay)
	return &mockSftpHandle{}, nil
}

func (s *MockSession) Close() error {
	return nil
}

type mockChannel struct{}

func (c *mockChannel) Exec(command string) error {
	time.Sleep(mockDelay)
	return nil
}

func (c *mockChannel) ReadOutput() (string, error) {
	time.Sleep(mockDelay)
	return mockOutput, nil
}

func (c *mockChannel) ExitStatus() (int, error) {
	return 0, nil
}

type mockSftpHandle struct{}

func (h *mockSftpHandle) Create(path string) (Writer, error) {
	time.Sleep(mockDelay)
	return &mockFile{}, nil
}

// mockFile accepts and discards writes, simulating a successful
// remote upload.
type mockFile struct{}

func (f *mockFile) Write(p []byte) (int, error) {
	time.Sleep(mockDelay)
	return len(p), nil
}
