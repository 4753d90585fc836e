package fixjsontest

// Option is a test case option.
type Option interface {
	set(t *T)
}

type option func(t *T)

func (f option) set(t *T) {
	f(t)
}

// EscapeSize sets the size of the escape buffer used when parsing.
// The default is large enough for any input under test.
func EscapeSize(size int) Option {
	return option(func(t *T) {
		t.escapeSize = size
	})
}

// Arena parses strings into an Arena instead of an escape buffer.
func Arena() Option {
	return option(func(t *T) {
		t.arena = true
	})
}

// Growable parses into growable storage instead of a fixed buffer.
func Growable() Option {
	return option(func(t *T) {
		t.growable = true
	})
}
