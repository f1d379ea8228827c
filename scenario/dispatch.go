package scenario

import "fmt"

// dispatch runs a single task against the session, routing to the
// matching executor by its concrete type. Each executor receives the
// session and the resolved variable mapping and is responsible for
// placeholder substitution of its own fields.
func dispatch(task Task, session Session, vars Variables, sink EventSink, guard *sftpGuard) error {
	switch t := task.(type) {
	case RemoteSudoTask:
		return t.execute(session, vars, sink)
	case SftpCopyTask:
		return t.execute(session, vars, sink, guard)
	default:
		return fmt.Errorf("unknown task variant %T", task)
	}
}
