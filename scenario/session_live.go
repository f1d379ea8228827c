package scenario

import (
	"fmt"
	"net"
	"time"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
	"golang.org/x/crypto/ssh/knownhosts"
)

// LiveSessionOptions configures the real SSH/SFTP session.
type LiveSessionOptions struct {
	// HostKeyCallback verifies the remote host key. Defaults to
	// ssh.InsecureIgnoreHostKey when nil — callers embedding this
	// engine in a security-sensitive context should supply one built
	// from golang.org/x/crypto/ssh/knownhosts.New instead.
	HostKeyCallback ssh.HostKeyCallback
	DialTimeout     time.Duration
}

// LiveSession is the real SSH/SFTP implementation of Session: it dials
// the server over TCP, performs the SSH handshake, and authenticates
// by password if one was configured, else via the local SSH agent.
type LiveSession struct {
	client *ssh.Client
}

// NewLiveSession connects and authenticates, running the handshake and
// authentication to completion before any task sees the session.
func NewLiveSession(server Server, creds Credentials, opts LiveSessionOptions) (*LiveSession, error) {
	auth, err := buildAuthMethods(creds)
	if err != nil {
		return nil, &SessionError{Op: "CannotAuthenticateWithAgent", Err: err}
	}

	hostKeyCallback := opts.HostKeyCallback
	if hostKeyCallback == nil {
		hostKeyCallback = ssh.InsecureIgnoreHostKey()
	}

	timeout := opts.DialTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	config := &ssh.ClientConfig{
		User:            creds.Username(),
		Auth:            auth,
		HostKeyCallback: hostKeyCallback,
		Timeout:         timeout,
	}

	addr := net.JoinHostPort(server.Host(), fmt.Sprintf("%d", server.Port()))

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, &SessionError{Op: "CannotConnectToRemoteServer", Err: err}
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, config)
	if err != nil {
		conn.Close()
		return nil, &SessionError{Op: "CannotInitiateTheSshHandshake", Err: err}
	}

	client := ssh.NewClient(sshConn, chans, reqs)
	return &LiveSession{client: client}, nil
}

// NewKnownHostsCallback builds a host key callback backed by an
// OpenSSH known_hosts file at path.
func NewKnownHostsCallback(path string) (ssh.HostKeyCallback, error) {
	callback, err := knownhosts.New(path)
	if err != nil {
		return nil, &SessionError{Op: "CannotReadKnownHostsFile", Err: err}
	}
	return callback, nil
}

func buildAuthMethods(creds Credentials) ([]ssh.AuthMethod, error) {
	if password, ok := creds.Password(); ok {
		return []ssh.AuthMethod{ssh.Password(password)}, nil
	}

	sock, err := dialAgent()
	if err != nil {
		return nil, err
	}
	agentClient := agent.NewClient(sock)
	return []ssh.AuthMethod{ssh.PublicKeysCallback(agentClient.Signers)}, nil
}

func (s *LiveSession) Channel() (Channel, error) {
	session, err := s.client.NewSession()
	if err != nil {
		return nil, &SessionError{Op: "CannotEstablishSessionChannel", Err: err}
	}
	return &liveChannel{session: session}, nil
}

func (s *LiveSession) Sftp() (SftpHandle, error) {
	client, err := sftp.NewClient(s.client)
	if err != nil {
		return nil, &SessionError{Op: "CannotOpenChannelAndInitializeSftp", Err: err}
	}
	return &liveSftpHandle{client: client}, nil
}

func (s *LiveSession) Close() error {
	return s.client.Close()
}

type liveChannel struct {
	session *ssh.Session
	output  []byte
	runErr  error
}

func (c *liveChannel) Exec(command string) error {
	output, err := c.session.CombinedOutput(command)
	c.output = output
	if err != nil {
		if _, isExit := err.(*ssh.ExitError); !isExit {
			return err
		}
	}
	c.runErr = err
	return nil
}

func (c *liveChannel) ReadOutput() (string, error) {
	return string(c.output), nil
}

func (c *liveChannel) ExitStatus() (int, error) {
	if c.runErr == nil {
		return 0, nil
	}
	if exitErr, ok := c.runErr.(*ssh.ExitError); ok {
		return exitErr.ExitStatus(), nil
	}
	return 0, c.runErr
}

type liveSftpHandle struct {
	client *sftp.Client
}

func (h *liveSftpHandle) Create(path string) (Writer, error) {
	return h.client.Create(path)
}
