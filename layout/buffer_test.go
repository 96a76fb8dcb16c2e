package layout

import (
	"errors"
	"testing"
)

func TestNewBuffer_DefaultCapacity(t *testing.T) {
	for _, c := range []int{0, -5} {
		if got := NewBuffer(c).Cap(); got != DefaultCapacity {
			t.Errorf("NewBuffer(%d).Cap() = %d, want %d", c, got, DefaultCapacity)
		}
	}
	if got := NewBuffer(3).Cap(); got != 3 {
		t.Errorf("NewBuffer(3).Cap() = %d", got)
	}
}

func TestBuffer_AppendFull(t *testing.T) {
	b := NewBuffer(2)
	if err := b.Append('a'); err != nil {
		t.Fatal(err)
	}
	if err := b.Append('b'); err != nil {
		t.Fatal(err)
	}
	if err := b.Append('c'); !errors.Is(err, ErrBufferFull) {
		t.Errorf("Append() on full buffer error = %v, want ErrBufferFull", err)
	}
	if err := b.Insert(0, 'c'); !errors.Is(err, ErrBufferFull) {
		t.Errorf("Insert() on full buffer error = %v, want ErrBufferFull", err)
	}
	if b.String() != "ab" {
		t.Errorf("String() = %q", b.String())
	}
}

func TestBuffer_Insert(t *testing.T) {
	tests := []struct {
		name  string
		start string
		index int
		code  rune
		want  string
		err   error
	}{
		{"front", "bc", 0, 'a', "abc", nil},
		{"middle", "ac", 1, 'b', "abc", nil},
		{"end", "ab", 2, 'c', "abc", nil},
		{"negative", "ab", -1, 'x', "ab", ErrIndexOutOfRange},
		{"past end", "ab", 3, 'x', "ab", ErrIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := bufferOf(t, tt.start)
			err := b.Insert(tt.index, tt.code)
			if !errors.Is(err, tt.err) {
				t.Errorf("Insert(%d) error = %v, want %v", tt.index, err, tt.err)
			}
			if b.String() != tt.want {
				t.Errorf("buffer = %q, want %q", b.String(), tt.want)
			}
		})
	}
}

func TestBuffer_Remove(t *testing.T) {
	b := bufferOf(t, "abc")
	if !b.Remove(1) || b.String() != "ac" {
		t.Errorf("Remove(1) -> %q, want \"ac\"", b.String())
	}
	if b.Remove(2) || b.Remove(-1) {
		t.Error("Remove out of range should report false")
	}
}

func TestBuffer_SetAndCodes(t *testing.T) {
	b := NewBuffer(3)
	if err := b.Set([]rune("abcd")); !errors.Is(err, ErrBufferFull) {
		t.Errorf("Set(4 codes) error = %v, want ErrBufferFull", err)
	}
	if err := b.Set([]rune("xyz")); err != nil {
		t.Fatal(err)
	}
	codes := b.Codes()
	codes[0] = 'q'
	if b.At(0) != 'x' {
		t.Error("Codes() should return a copy")
	}
	if !b.Full() {
		t.Error("Full() = false at capacity")
	}
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() after Reset = %d", b.Len())
	}
}
