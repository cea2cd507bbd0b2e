package container

var (
	_ Container[int]               = (*Stack[int])(nil)
	_ Suffixable[int, *Stack[int]] = (*Stack[int])(nil)
)

// Container is anything that can be appended to and indexed by position.
type Container[T any] interface {
	Append(T)
	Len() int
	At(int) T
}

// Suffixable is a Container that can cut its last n items into a new C.
type Suffixable[T any, C any] interface {
	Container[T]
	Suffix(n int) C
}

func AllItemsMatch[T comparable, C1 Container[T], C2 Container[T]](a C1, b C2) bool {
	if a.Len() != b.Len() {
		return false
	}

	for i := range a.Len() {
		if a.At(i) != b.At(i) {
			return false
		}
	}

	return true
}

func LastN[T any, C Suffixable[T, C]](c C, n int) C {
	return c.Suffix(n)
}
