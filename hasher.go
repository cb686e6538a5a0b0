package countmap

import (
	"fmt"

	"github.com/halvden/countmap/hash"
)

// Hasher is the grouping rule of a Map: it reduces every key to a hash
// token, and keys with equal tokens are counted together. A Hasher must
// be deterministic and total over the keys it will see.
//
// The name identifies the rule. Map.Equal compares hashers by name
// only, so two Hashers carrying the same name are the same rule as far
// as map equality is concerned, whatever functions they wrap.
type Hasher[K any, H comparable] interface {
	// Name returns the identifier of the grouping rule.
	Name() string
	// Hash returns the token for a key.
	Hash(k K) H
}

// Func adapts an ordinary function into a Hasher with the given name.
func Func[K any, H comparable](name string, f func(K) H) Hasher[K, H] {
	return funcHasher[K, H]{name, f}
}

type funcHasher[K any, H comparable] struct {
	name string
	f    func(K) H
}

func (h funcHasher[K, H]) Name() string { return h.name }

func (h funcHasher[K, H]) Hash(k K) H { return h.f(k) }

// Fmt returns the default Hasher: a key is tokened by its fmt string
// representation, so keys that print the same are counted together. It
// is named "fmt".
func Fmt[K any]() Hasher[K, string] {
	return Func("fmt", func(k K) string { return fmt.Sprint(k) })
}

// DJB returns a Hasher tokening string keys with the DJB hash from the
// hash package. It is named "djb".
func DJB() Hasher[string, uint32] {
	return Func("djb", hash.String)
}
