package scenario

// Task is a closed sum type: the only implementations are
// RemoteSudoTask and SftpCopyTask. The unexported isTask method seals
// the interface against external implementations.
type Task interface {
	isTask()
	ID() string
	Description() string
	ErrorMessage() string
}

type taskBase struct {
	id           string
	description  string
	errorMessage string
}

func (t taskBase) ID() string           { return t.id }
func (t taskBase) Description() string  { return t.description }
func (t taskBase) ErrorMessage() string { return t.errorMessage }

// RemoteSudoTask executes a privileged shell command over the
// session's exec channel.
type RemoteSudoTask struct {
	taskBase
	Command string
}

func (RemoteSudoTask) isTask() {}

// NewRemoteSudoTask builds a RemoteSudoTask.
func NewRemoteSudoTask(id, description, errorMessage, command string) RemoteSudoTask {
	return RemoteSudoTask{
		taskBase: taskBase{id: id, description: description, errorMessage: errorMessage},
		Command:  command,
	}
}

// SftpCopyTask uploads a local file to a remote path over SFTP.
type SftpCopyTask struct {
	taskBase
	SourcePath      string
	DestinationPath string
}

func (SftpCopyTask) isTask() {}

// NewSftpCopyTask builds a SftpCopyTask.
func NewSftpCopyTask(id, description, errorMessage, sourcePath, destinationPath string) SftpCopyTask {
	return SftpCopyTask{
		taskBase:        taskBase{id: id, description: description, errorMessage: errorMessage},
		SourcePath:      sourcePath,
		DestinationPath: destinationPath,
	}
}

// Tasks is the registry of named tasks, keyed by task id. Immutable
// after construction.
type Tasks map[string]Task

// Get looks up a task by id.
func (t Tasks) Get(id string) (Task, bool) {
	task, ok := t[id]
	return task, ok
}
