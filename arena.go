package fixjson

// DefaultArenaChunkSize is the chunk size of an Arena created with a zero size.
const DefaultArenaChunkSize = 4096

// Arena is an append-only store of strings.
//
// Strings are copied into chunks that are never moved, reused or freed, so a
// string returned by an Arena stays valid for as long as the Arena is
// reachable. An Arena only grows; to release memory drop it and create a new one.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	chunks    [][]byte
	pending   []byte
	chunkSize int
	size      int
	n         int
}

// NewArena creates an arena allocating chunks of chunkSize bytes.
func NewArena(chunkSize int) *Arena {
	return &Arena{chunkSize: chunkSize}
}

// Push copies s into the arena and returns the interned copy.
func (a *Arena) Push(s string) string {
	return a.push(s2b(s))
}

// Len returns the number of strings pushed.
func (a *Arena) Len() int {
	return a.n
}

// Size returns the total bytes of strings pushed.
func (a *Arena) Size() int {
	return a.size
}

func (a *Arena) push(b []byte) string {
	a.n++
	if len(b) == 0 {
		return ""
	}
	dst := a.alloc(len(b))
	copy(dst, b)
	a.size += len(b)
	return b2s(dst)
}

func (a *Arena) alloc(size int) []byte {
	if i := len(a.chunks) - 1; i >= 0 {
		chunk := a.chunks[i]
		if n := len(chunk); cap(chunk)-n >= size {
			a.chunks[i] = chunk[:n+size]
			return chunk[n : n+size : n+size]
		}
	}
	chunkSize := a.chunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultArenaChunkSize
	}
	if chunkSize < size {
		chunkSize = size
	}
	chunk := make([]byte, size, chunkSize)
	a.chunks = append(a.chunks, chunk)
	return chunk[:size:size]
}

func (a *Arena) begin() {
	a.pending = a.pending[:0]
}

func (a *Arena) writeByte(c byte) error {
	a.pending = append(a.pending, c)
	return nil
}

func (a *Arena) commit() string {
	s := a.push(a.pending)
	a.pending = a.pending[:0]
	return s
}
