package scenario

import (
	"io"
	"os"
)

// sftpCopyBufferSize is the buffer size for the streaming copy loop.
// Buffer size and progress granularity are part of the contract: every
// buffered chunk emits exactly one progress event.
const sftpCopyBufferSize = 8 * 1024

// execute runs the SftpCopy executor algorithm: resolve both paths,
// open the local source and the remote destination, then stream the
// copy in fixed-size chunks, emitting one progress event per chunk.
//
// A zero-byte source file emits zero progress events: the read loop
// breaks on n == 0 before any event is emitted, matching the original
// implementation's execution order (see DESIGN.md).
func (t SftpCopyTask) execute(session Session, vars Variables, sink EventSink, guard *sftpGuard) error {
	source, err := vars.Resolve(t.SourcePath)
	if err != nil {
		return &SftpCopyError{Op: "CannotResolveSourcePathPlaceholders", Err: err}
	}
	destination, err := vars.Resolve(t.DestinationPath)
	if err != nil {
		return &SftpCopyError{Op: "CannotResolveDestinationPathPlaceholders", Err: err}
	}

	sink.Send(SftpCopyStartedEvent{Source: source, Destination: destination})

	sourceFile, err := os.Open(source)
	if err != nil {
		return &SftpCopyError{Op: "CannotOpenSourceFile", Err: err}
	}
	defer sourceFile.Close()

	info, err := sourceFile.Stat()
	if err != nil {
		return &SftpCopyError{Op: "CannotReadSourceFile", Err: err}
	}
	total := info.Size()

	err = guard.withSftp(session, func(handle SftpHandle) error {
		destFile, err := handle.Create(destination)
		if err != nil {
			return &SftpCopyError{Op: "CannotCreateDestinationFile", Err: err}
		}

		buf := make([]byte, sftpCopyBufferSize)
		var current int64
		for {
			n, readErr := sourceFile.Read(buf)
			if n == 0 {
				if readErr == io.EOF || readErr == nil {
					break
				}
				return &SftpCopyError{Op: "CannotReadSourceFile", Err: readErr}
			}

			if _, writeErr := destFile.Write(buf[:n]); writeErr != nil {
				return &SftpCopyError{Op: "CannotWriteDestinationFile", Err: writeErr}
			}

			current += int64(n)
			sink.Send(SftpCopyProgressEvent{Current: current, Total: total})

			if readErr == io.EOF {
				break
			}
			if readErr != nil {
				return &SftpCopyError{Op: "CannotReadSourceFile", Err: readErr}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	sink.Send(SftpCopyCompletedEvent{Source: source, Destination: destination})
	return nil
}
