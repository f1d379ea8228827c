package scenario

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestSftpCopyTask_Execute_StreamsInChunksWithProgress(t *testing.T) {
	dir := t.TempDir()
	content := bytes.Repeat([]byte("x"), 20480) // 2.5x the 8KiB buffer
	source := writeTempFile(t, dir, "source.bin", content)

	task := NewSftpCopyTask("upload", "upload file", "upload failed", source, "/remote/dest.bin")
	sink := &recordingSink{}
	handle := &fakeSftpHandle{}
	session := &fakeSession{sftp: handle}

	err := task.execute(session, Variables{}, sink, &sftpGuard{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var progress []SftpCopyProgressEvent
	for _, e := range sink.events {
		if p, ok := e.(SftpCopyProgressEvent); ok {
			progress = append(progress, p)
		}
	}

	want := []SftpCopyProgressEvent{
		{Current: 8192, Total: 20480},
		{Current: 16384, Total: 20480},
		{Current: 20480, Total: 20480},
	}
	if len(progress) != len(want) {
		t.Fatalf("progress events = %d, want %d: %+v", len(progress), len(want), progress)
	}
	for i, p := range progress {
		if p.Current != want[i].Current || p.Total != want[i].Total {
			t.Errorf("progress[%d] = %+v, want %+v", i, p, want[i])
		}
	}

	if handle.writer.buf.Len() != len(content) {
		t.Errorf("bytes written = %d, want %d", handle.writer.buf.Len(), len(content))
	}
}

func TestSftpCopyTask_Execute_EmptyFile_EmitsZeroProgressEvents(t *testing.T) {
	dir := t.TempDir()
	source := writeTempFile(t, dir, "empty.bin", nil)

	task := NewSftpCopyTask("upload", "upload file", "upload failed", source, "/remote/empty.bin")
	sink := &recordingSink{}
	handle := &fakeSftpHandle{}
	session := &fakeSession{sftp: handle}

	err := task.execute(session, Variables{}, sink, &sftpGuard{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, e := range sink.events {
		if _, ok := e.(SftpCopyProgressEvent); ok {
			t.Fatalf("expected zero progress events for an empty source file, got %+v", e)
		}
	}

	names := sink.names()
	if len(names) != 2 || names[0] != "sftp_copy_started" || names[1] != "sftp_copy_completed" {
		t.Errorf("events = %v, want [sftp_copy_started sftp_copy_completed]", names)
	}
}

func TestSftpCopyTask_Execute_SourceMissing(t *testing.T) {
	task := NewSftpCopyTask("upload", "upload file", "upload failed", "/no/such/file", "/remote/dest")
	sink := &recordingSink{}
	session := &fakeSession{sftp: &fakeSftpHandle{}}

	err := task.execute(session, Variables{}, sink, &sftpGuard{})
	if err == nil {
		t.Fatal("expected an error for a missing source file")
	}
	sftpErr, ok := err.(*SftpCopyError)
	if !ok {
		t.Fatalf("error = %T, want *SftpCopyError", err)
	}
	if sftpErr.Op != "CannotOpenSourceFile" {
		t.Errorf("Op = %q, want CannotOpenSourceFile", sftpErr.Op)
	}
}

func TestSftpCopyTask_Execute_GuardRejectsConcurrentAccess(t *testing.T) {
	dir := t.TempDir()
	source := writeTempFile(t, dir, "source.bin", []byte("hi"))
	task := NewSftpCopyTask("upload", "upload", "", source, "/remote/dest")
	session := &fakeSession{sftp: &fakeSftpHandle{}}

	guard := &sftpGuard{}
	guard.mu.Lock() // simulate a copy already in flight

	err := task.execute(session, Variables{}, &recordingSink{}, guard)
	if err == nil {
		t.Fatal("expected CannotGetALockOnSftpChannel")
	}
	sftpErr, ok := err.(*SftpCopyError)
	if !ok || sftpErr.Op != "CannotGetALockOnSftpChannel" {
		t.Fatalf("error = %v, want CannotGetALockOnSftpChannel", err)
	}
}
