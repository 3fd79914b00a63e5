package devs

import (
	"strings"
)

// Message is a single payload travelling through a port.
type Message = any

// Bag maps ports to ordered message sequences produced or consumed at one
// time instant. Insertion order is preserved per port and across ports.
// The zero value is not usable; call NewBag.
type Bag struct {
	ports []Port
	msgs  map[Port][]Message
}

// NewBag returns an empty bag.
func NewBag() *Bag {
	return &Bag{msgs: make(map[Port][]Message)}
}

// Messages returns the sequence for p, registering an empty one if p has
// never been seen. The returned slice must be treated as read-only; use Add
// to append.
func (b *Bag) Messages(p Port) []Message {
	msgs, ok := b.msgs[p]
	if !ok {
		b.ports = append(b.ports, p)
		b.msgs[p] = nil
	}
	return msgs
}

// Peek returns the sequence for p without registering the port.
func (b *Bag) Peek(p Port) []Message {
	return b.msgs[p]
}

// Add appends msgs to the sequence for p.
func (b *Bag) Add(p Port, msgs ...Message) {
	if _, ok := b.msgs[p]; !ok {
		b.ports = append(b.ports, p)
	}
	b.msgs[p] = append(b.msgs[p], msgs...)
}

// Ports returns every port registered in the bag, in first-use order.
// Ports may map to empty sequences.
func (b *Bag) Ports() []Port {
	return b.ports
}

// Empty reports whether no port holds a message.
func (b *Bag) Empty() bool {
	for _, msgs := range b.msgs {
		if len(msgs) > 0 {
			return false
		}
	}
	return true
}

// Len returns the total number of messages across all ports.
func (b *Bag) Len() int {
	n := 0
	for _, msgs := range b.msgs {
		n += len(msgs)
	}
	return n
}

// Clear drops every port and message.
func (b *Bag) Clear() {
	b.ports = b.ports[:0]
	clear(b.msgs)
}

// Merge appends every sequence of other to b, port by port in other's order.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	for _, p := range other.ports {
		b.Add(p, other.msgs[p]...)
	}
}

// Clone returns a deep copy of the bag's structure. Payloads are shared.
func (b *Bag) Clone() *Bag {
	c := NewBag()
	c.Merge(b)
	return c
}

// String renders the bag as [port: {m1, m2}, port: {...}].
func (b *Bag) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range b.ports {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		sb.WriteString(": ")
		sb.WriteString(Implode(b.msgs[p]))
	}
	sb.WriteString("]")
	return sb.String()
}
