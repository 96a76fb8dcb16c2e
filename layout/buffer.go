package layout

import "errors"

// DefaultCapacity is the number of codes a Buffer holds unless told otherwise.
const DefaultCapacity = 1000

// Sentinel errors for layout package.
var (
	// ErrBufferFull is returned when an insert would exceed the capacity.
	ErrBufferFull = errors.New("layout: buffer full")

	// ErrIndexOutOfRange is returned for an insert position outside [0, Len].
	ErrIndexOutOfRange = errors.New("layout: index out of range")
)

// Buffer is the editable code sequence. It is owned by one caller; layout
// passes mutate it when resolving Backspace codes.
type Buffer struct {
	codes    []rune
	capacity int
}

// NewBuffer creates an empty buffer. A non-positive capacity selects
// DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		codes:    make([]rune, 0, min(capacity, 64)),
		capacity: capacity,
	}
}

// Len returns the number of codes.
func (b *Buffer) Len() int {
	return len(b.codes)
}

// Cap returns the maximum number of codes.
func (b *Buffer) Cap() int {
	return b.capacity
}

// Full reports whether another code would exceed the capacity.
func (b *Buffer) Full() bool {
	return len(b.codes) >= b.capacity
}

// At returns the code at index i.
func (b *Buffer) At(i int) rune {
	return b.codes[i]
}

// Codes returns a copy of the codes.
func (b *Buffer) Codes() []rune {
	out := make([]rune, len(b.codes))
	copy(out, b.codes)
	return out
}

// String returns the codes as a string, control codes included.
func (b *Buffer) String() string {
	return string(b.codes)
}

// Append adds r at the end.
func (b *Buffer) Append(r rune) error {
	if b.Full() {
		return ErrBufferFull
	}
	b.codes = append(b.codes, r)
	return nil
}

// Insert places r before index i. i == Len appends.
func (b *Buffer) Insert(i int, r rune) error {
	if i < 0 || i > len(b.codes) {
		return ErrIndexOutOfRange
	}
	if b.Full() {
		return ErrBufferFull
	}
	b.codes = append(b.codes, 0)
	copy(b.codes[i+1:], b.codes[i:])
	b.codes[i] = r
	return nil
}

// Remove deletes the code at index i. It reports false if i is out of range.
func (b *Buffer) Remove(i int) bool {
	if i < 0 || i >= len(b.codes) {
		return false
	}
	b.codes = append(b.codes[:i], b.codes[i+1:]...)
	return true
}

// Set replaces the contents with codes.
func (b *Buffer) Set(codes []rune) error {
	if len(codes) > b.capacity {
		return ErrBufferFull
	}
	b.codes = append(b.codes[:0], codes...)
	return nil
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.codes = b.codes[:0]
}

// compact keeps the codes whose keep flag is set, preserving order.
func (b *Buffer) compact(keep []bool) {
	n := 0
	for i, c := range b.codes {
		if keep[i] {
			b.codes[n] = c
			n++
		}
	}
	b.codes = b.codes[:n]
}
