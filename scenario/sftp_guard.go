package scenario

import "sync"

// sftpGuard serializes concurrent SFTP access so the mock and real
// Session implementations can share one policy. Go's sync.Mutex has
// no poisoning concept, so an unobtainable lock is modeled with
// TryLock: a guard already held by another in-flight copy maps to
// CannotGetALockOnSftpChannel rather than blocking or crashing.
type sftpGuard struct {
	mu sync.Mutex
}

// withSftp opens the session's SFTP handle under the guard and runs fn
// with it, releasing the guard afterward regardless of outcome.
func (g *sftpGuard) withSftp(session Session, fn func(SftpHandle) error) error {
	if !g.mu.TryLock() {
		return &SftpCopyError{Op: "CannotGetALockOnSftpChannel"}
	}
	defer g.mu.Unlock()

	handle, err := session.Sftp()
	if err != nil {
		return &SftpCopyError{Op: "CannotOpenChannelAndInitializeSftp", Err: err}
	}
	return fn(handle)
}
