package lru

// entry is one stored key/value pair plus its position in the recency
// order. An entry is always reachable from exactly one index mapping
// and exactly one list position, or from neither (after release).
type entry[K comparable, V any] struct {
	key   K
	value V

	// Linked list pointers for recency tracking
	prev *entry[K, V]
	next *entry[K, V]
}

// recencyList is a doubly-linked list ordering entries from most
// recently used (head) to least recently used (tail).
// All pointer manipulation is centralized here for correctness and readability.
type recencyList[K comparable, V any] struct {
	head *entry[K, V]
	tail *entry[K, V]
}

// pushFront adds an entry at the head of the list (most recently used position).
func (l *recencyList[K, V]) pushFront(e *entry[K, V]) {
	e.next = l.head
	e.prev = nil
	if l.head != nil {
		l.head.prev = e
	} else {
		l.tail = e
	}
	l.head = e
}

// remove removes an entry from anywhere in the list.
func (l *recencyList[K, V]) remove(e *entry[K, V]) {
	if e == l.head && e == l.tail {
		// Single element: clear both
		l.head = nil
		l.tail = nil
	} else if e == l.head {
		l.head = e.next
		if l.head != nil {
			l.head.prev = nil
		}
	} else if e == l.tail {
		l.tail = e.prev
		if l.tail != nil {
			l.tail.next = nil
		}
	} else {
		// Middle entry: bridge neighbors
		e.prev.next = e.next
		e.next.prev = e.prev
	}
	// Clear the entry's pointers so a removed entry never dangles
	// into the list.
	e.prev = nil
	e.next = nil
}

// moveToFront moves an existing entry to the head (most recently used).
func (l *recencyList[K, V]) moveToFront(e *entry[K, V]) {
	if e == l.head {
		return // Already at front
	}
	l.remove(e)
	l.pushFront(e)
}

// front returns the head of the list (most recently used).
func (l *recencyList[K, V]) front() *entry[K, V] {
	return l.head
}

// back returns the tail of the list (least recently used).
func (l *recencyList[K, V]) back() *entry[K, V] {
	return l.tail
}
