package main

import "testing"

func TestTruncateOutput_ShortPassesThrough(t *testing.T) {
	if got := truncateOutput("hello"); got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestTruncateOutput_LongIsCapped(t *testing.T) {
	long := make([]byte, remoteSudoOutputLimit+500)
	for i := range long {
		long[i] = 'x'
	}
	got := truncateOutput(string(long))
	if len(got) <= remoteSudoOutputLimit {
		t.Fatalf("expected truncation marker appended, got length %d", len(got))
	}
	if got[:remoteSudoOutputLimit] != string(long[:remoteSudoOutputLimit]) {
		t.Error("truncated output does not match the original prefix")
	}
}
