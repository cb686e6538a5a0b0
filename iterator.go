package countmap

// Iterator is an iterator over the records of a Map. It can be used
// like this:
//
//	for it := m.Iterator(); it.HasElem(); it.Next() {
//	    key, count := it.Elem()
//	    // do something with the record...
//	}
type Iterator[K any] interface {
	// Elem returns the representative key and count of the current
	// record.
	Elem() (K, int)
	// HasElem returns whether the iterator is pointing to a record.
	HasElem() bool
	// Next moves the iterator to the next record.
	Next()
}

// Iterator returns an iterator over the records of m, in no particular
// order. The effect of mutating m while iterating is unspecified.
func (m *Map[K, H]) Iterator() Iterator[K] {
	return &iterator[K]{m.ordered(), 0}
}

type iterator[K any] struct {
	records []*record[K]
	index   int
}

func (it *iterator[K]) Elem() (K, int) {
	r := it.records[it.index]
	return r.key, r.count
}

func (it *iterator[K]) HasElem() bool {
	return it.index < len(it.records)
}

func (it *iterator[K]) Next() {
	it.index++
}
