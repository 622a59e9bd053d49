package accumulate

import (
	"bytes"
	"testing"
)

func TestBytes_Empty(t *testing.T) {
	b := NewBytes()

	if b.Len() != 0 {
		t.Errorf("Expected length 0, got %d", b.Len())
	}

	if len(b.Bytes()) != 0 {
		t.Errorf("Expected empty content, got %q", b.Bytes())
	}

	term := b.Terminated()
	if len(term) != 1 || term[0] != 0 {
		t.Errorf("Expected single NUL terminator, got %v", term)
	}
}

func TestBytes_AppendConcatenatesInOrder(t *testing.T) {
	testCases := []struct {
		name   string
		chunks [][]byte
		want   string
	}{
		{"single chunk", [][]byte{[]byte("Hello")}, "Hello"},
		{"split chunk", [][]byte{[]byte("Hel"), []byte("lo")}, "Hello"},
		{"many small chunks", [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")}, "abcd"},
		{"empty chunk interleaved", [][]byte{[]byte("foo"), nil, []byte("bar")}, "foobar"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBytes()
			for _, chunk := range tc.chunks {
				n, err := b.Append(chunk)
				if err != nil {
					t.Fatalf("Append failed: %v", err)
				}
				if n != len(chunk) {
					t.Errorf("Expected %d bytes consumed, got %d", len(chunk), n)
				}
			}

			if got := string(b.Bytes()); got != tc.want {
				t.Errorf("Expected content %q, got %q", tc.want, got)
			}
			if b.Len() != len(tc.want) {
				t.Errorf("Expected length %d, got %d", len(tc.want), b.Len())
			}
		})
	}
}

func TestBytes_AlwaysTerminated(t *testing.T) {
	b := NewBytes()

	chunks := [][]byte{[]byte("stream"), []byte("ed "), []byte("data")}
	for _, chunk := range chunks {
		if _, err := b.Append(chunk); err != nil {
			t.Fatalf("Append failed: %v", err)
		}

		term := b.Terminated()
		if term[len(term)-1] != 0 {
			t.Error("Expected terminator byte after last content byte")
		}
		if len(term) != b.Len()+1 {
			t.Errorf("Expected terminated length %d, got %d", b.Len()+1, len(term))
		}
	}
}

func TestBytes_BinaryChunksWithEmbeddedNUL(t *testing.T) {
	b := NewBytes()

	chunk := []byte{'a', 0, 'b', 0, 'c'}
	n, err := b.Append(chunk)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if n != 5 {
		t.Errorf("Expected 5 bytes consumed, got %d", n)
	}

	if !bytes.Equal(b.Bytes(), chunk) {
		t.Errorf("Expected %v, got %v", chunk, b.Bytes())
	}
	if b.Len() != 5 {
		t.Errorf("Expected length 5, got %d", b.Len())
	}
}

func TestBytes_EmptyChunkIsNoOp(t *testing.T) {
	b := NewBytes()
	if _, err := b.Append([]byte("before")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	n, err := b.Append(nil)
	if err != nil {
		t.Fatalf("Expected empty append to succeed, got %v", err)
	}
	if n != 0 {
		t.Errorf("Expected 0 bytes consumed, got %d", n)
	}

	if string(b.Bytes()) != "before" {
		t.Errorf("Expected content unchanged, got %q", b.Bytes())
	}
}

func TestBytes_AppendDoesNotAliasChunk(t *testing.T) {
	b := NewBytes()
	chunk := []byte("mutate me")
	if _, err := b.Append(chunk); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	chunk[0] = 'X'

	if string(b.Bytes()) != "mutate me" {
		t.Errorf("Expected owned copy, got %q", b.Bytes())
	}
}

func TestBytes_Release(t *testing.T) {
	b := NewBytes()
	if _, err := b.Append([]byte("data")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	b.Release()

	if b.Len() != 0 {
		t.Errorf("Expected length 0 after release, got %d", b.Len())
	}
	if b.Bytes() != nil {
		t.Error("Expected nil content after release")
	}

	if _, err := b.Append([]byte("more")); err != ErrReleased {
		t.Errorf("Expected ErrReleased, got %v", err)
	}
}
