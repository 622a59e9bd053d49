package accumulate

import "testing"

func TestLines_Empty(t *testing.T) {
	l := NewLines()

	if l.Count() != 0 {
		t.Errorf("Expected count 0, got %d", l.Count())
	}

	if _, ok := l.Get(0); ok {
		t.Error("Expected Get(0) to fail on empty sequence")
	}
}

func TestLines_AppendPreservesOrderAndBytes(t *testing.T) {
	l := NewLines()

	lines := []string{
		"HTTP/1.1 200 OK\r\n",
		"Content-Type: text/plain\r\n",
		"Content-Type: text/plain\r\n", // duplicates allowed
		"X-Empty:\r\n",
	}
	for _, line := range lines {
		if err := l.AppendLine([]byte(line)); err != nil {
			t.Fatalf("AppendLine failed: %v", err)
		}
	}

	if l.Count() != len(lines) {
		t.Fatalf("Expected count %d, got %d", len(lines), l.Count())
	}

	for i, want := range lines {
		got, ok := l.Get(i)
		if !ok {
			t.Fatalf("Expected line at index %d", i)
		}
		if got != want {
			t.Errorf("Expected line %d to be %q, got %q", i, want, got)
		}
	}
}

func TestLines_DropsCRLFSentinel(t *testing.T) {
	l := NewLines()

	if err := l.AppendLine([]byte("Server: test\r\n")); err != nil {
		t.Fatalf("AppendLine failed: %v", err)
	}
	if err := l.AppendLine([]byte("\r\n")); err != nil {
		t.Fatalf("Expected sentinel append to succeed, got %v", err)
	}

	if l.Count() != 1 {
		t.Errorf("Expected sentinel to be dropped, count %d", l.Count())
	}

	for _, line := range l.All() {
		if line == "\r\n" {
			t.Error("Sentinel line stored in sequence")
		}
	}
}

func TestLines_NearSentinelLinesAreStored(t *testing.T) {
	// Only the exact two-byte CR LF chunk is a sentinel.
	testCases := []string{"\r", "\n", "\n\r", " \r\n", "\r\n "}

	for _, raw := range testCases {
		l := NewLines()
		if err := l.AppendLine([]byte(raw)); err != nil {
			t.Fatalf("AppendLine(%q) failed: %v", raw, err)
		}
		if l.Count() != 1 {
			t.Errorf("Expected %q to be stored, count %d", raw, l.Count())
		}
	}
}

func TestLines_AppendCopiesRaw(t *testing.T) {
	l := NewLines()
	raw := []byte("X-Trace: abc")
	if err := l.AppendLine(raw); err != nil {
		t.Fatalf("AppendLine failed: %v", err)
	}

	raw[0] = 'Y'

	got, _ := l.Get(0)
	if got != "X-Trace: abc" {
		t.Errorf("Expected owned copy, got %q", got)
	}
}

func TestLines_AllReturnsCopy(t *testing.T) {
	l := NewLines()
	if err := l.AppendLine([]byte("a: 1")); err != nil {
		t.Fatalf("AppendLine failed: %v", err)
	}

	all := l.All()
	all[0] = "tampered"

	got, _ := l.Get(0)
	if got != "a: 1" {
		t.Errorf("Expected sequence unchanged, got %q", got)
	}
}

func TestLines_Release(t *testing.T) {
	l := NewLines()
	if err := l.AppendLine([]byte("a: 1")); err != nil {
		t.Fatalf("AppendLine failed: %v", err)
	}

	l.Release()

	if l.Count() != 0 {
		t.Errorf("Expected count 0 after release, got %d", l.Count())
	}
	if err := l.AppendLine([]byte("b: 2")); err != ErrReleased {
		t.Errorf("Expected ErrReleased, got %v", err)
	}
}
