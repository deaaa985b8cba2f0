package cache

// entry is a cached value and its node in the recency list.
type entry struct {
	key        Key
	value      []byte
	prev, next *entry
}

// lruList is a doubly-linked list ordered from most to least recently
// used. Callers synchronise access.
type lruList struct {
	head, tail *entry
	len        int
}

func (l *lruList) pushFront(e *entry) {
	e.prev, e.next = nil, l.head
	if l.head != nil {
		l.head.prev = e
	}
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
	l.len++
}

func (l *lruList) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.prev, e.next = nil, nil
	l.len--
}

func (l *lruList) moveToFront(e *entry) {
	if e == l.head {
		return
	}
	l.remove(e)
	l.pushFront(e)
}

// back returns the least recently used entry, or nil.
func (l *lruList) back() *entry {
	return l.tail
}
