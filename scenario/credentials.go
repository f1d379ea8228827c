package scenario

// Credentials holds the username and optional password used to
// authenticate the SSH session. A nil password means agent-based
// authentication must be attempted instead.
type Credentials struct {
	username string
	password *string
}

// NewCredentials builds a Credentials value. Pass a nil password to
// signal agent-based authentication.
func NewCredentials(username string, password *string) Credentials {
	return Credentials{username: username, password: password}
}

func (c Credentials) Username() string {
	return c.username
}

// Password returns the configured password and whether one was set.
func (c Credentials) Password() (string, bool) {
	if c.password == nil {
		return "", false
	}
	return *c.password, true
}
