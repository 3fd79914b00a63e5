package devs

import (
	"reflect"
)

// Port identifies a typed input or output channel of a model.
// Ports are compared by value: name and message type together.
// A nil Type accepts any payload.
type Port struct {
	Name string
	Type reflect.Type
}

// Untyped returns a port that carries payloads of any type.
func Untyped(name string) Port {
	return Port{Name: name}
}

func (p Port) String() string {
	return p.Name
}

// Accepts reports whether messages leaving src may be delivered to p.
func (p Port) Accepts(src Port) bool {
	if p.Type == nil || src.Type == nil {
		return true
	}
	if src.Type == p.Type {
		return true
	}
	return src.Type.AssignableTo(p.Type)
}

// TypedPort is a Port whose payloads are statically known to be T.
// It gives model authors typed access to a Bag without type switches.
type TypedPort[T any] struct {
	Port
}

// PortOf declares a port named name carrying messages of type T.
func PortOf[T any](name string) TypedPort[T] {
	return TypedPort[T]{Port: Port{Name: name, Type: reflect.TypeFor[T]()}}
}

// Add appends vs to the port's sequence in b.
func (p TypedPort[T]) Add(b *Bag, vs ...T) {
	for _, v := range vs {
		b.Add(p.Port, v)
	}
}

// Get returns the port's messages in b in insertion order.
// Payloads of another type (only possible through untyped writes) are skipped.
func (p TypedPort[T]) Get(b *Bag) []T {
	msgs := b.Messages(p.Port)
	out := make([]T, 0, len(msgs))
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			out = append(out, v)
		}
	}
	return out
}
