package fixjson

// Store is where a parser puts fields or array values.
//
// Put is called with consecutive indexes starting at 0.
// It returns FieldBufferTooSmall if there is no room for the item.
type Store[T any] interface {
	Put(i int, v T) error
}

// Fixed is a store over a caller owned slice.
// Its capacity is the length of the slice and it never grows.
type Fixed[T any] []T

var (
	_ Store[Field] = Fixed[Field](nil)
	_ Store[Value] = Growable[Value]{}
	_ Store[Field] = Discard[Field]{}
)

func (s Fixed[T]) Put(i int, v T) error {
	if 0 <= i && i < len(s) {
		s[i] = v
		return nil
	}
	return FieldBufferTooSmall
}

// Growable is a store over a slice that grows on demand.
// Items below the slice length are overwritten, the rest are appended.
type Growable[T any] struct {
	items *[]T
}

// Grow creates a growable store backed by *items.
func Grow[T any](items *[]T) Growable[T] {
	return Growable[T]{items: items}
}

func (g Growable[T]) Put(i int, v T) error {
	items := *g.items
	if 0 <= i && i < len(items) {
		items[i] = v
		return nil
	}
	*g.items = append(items, v)
	return nil
}

// Discard is a store that keeps nothing. It is used to validate input.
type Discard[T any] struct{}

func (Discard[T]) Put(int, T) error {
	return nil
}
