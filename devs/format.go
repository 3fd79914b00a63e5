package devs

import (
	"fmt"
	"strings"
)

// FormatMessage renders a payload for diagnostics. Payloads that know how to
// print themselves (fmt.Stringer, error) and plain scalars are printed by
// value; anything else is reported by its type name.
func FormatMessage(m Message) string {
	switch v := m.(type) {
	case nil:
		return "<nil>"
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	case string:
		return v
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64,
		float32, float64, complex64, complex128:
		return fmt.Sprint(v)
	default:
		return fmt.Sprintf("obscure message of type %T", m)
	}
}

// Implode renders a message sequence as {m1, m2, ...}.
func Implode(msgs []Message) string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, m := range msgs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(FormatMessage(m))
	}
	sb.WriteString("}")
	return sb.String()
}
