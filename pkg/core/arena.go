package core

// defaultArenaChunk is the number of values per arena chunk
const defaultArenaChunk = 256

// Arena is a chunked bump allocator for scene objects that live for a whole render.
// Pointers returned by New stay valid until Reset; chunks are never reallocated.
// An Arena is not safe for concurrent use; scenes are built on one goroutine.
type Arena[T any] struct {
	chunkSize int
	chunks    [][]T
	current   int
	count     int
}

// NewArena creates an arena that grows in chunks of chunkSize values
func NewArena[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = defaultArenaChunk
	}
	return &Arena[T]{chunkSize: chunkSize}
}

// New stores value in the arena and returns a stable pointer to it
func (a *Arena[T]) New(value T) *T {
	if len(a.chunks) == 0 {
		a.chunks = append(a.chunks, make([]T, 0, a.chunkSize))
	}
	if len(a.chunks[a.current]) == a.chunkSize {
		a.current++
		if a.current == len(a.chunks) {
			a.chunks = append(a.chunks, make([]T, 0, a.chunkSize))
		}
	}

	chunk := append(a.chunks[a.current], value)
	a.chunks[a.current] = chunk
	a.count++
	return &chunk[len(chunk)-1]
}

// Len returns the number of values allocated since the last reset
func (a *Arena[T]) Len() int {
	return a.count
}

// Reset releases every value at once and keeps the chunks for reuse.
// Pointers handed out earlier must not be used afterwards.
func (a *Arena[T]) Reset() {
	for i := range a.chunks {
		clear(a.chunks[i])
		a.chunks[i] = a.chunks[i][:0]
	}
	a.current = 0
	a.count = 0
}
