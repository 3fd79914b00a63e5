package devs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type named struct{ n string }

func (v named) String() string { return "named:" + v.n }

type opaque struct{ secret []int }

func TestFormatMessage_PrintableAndObscurePayloads(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want string
	}{
		{"stringer", named{"x"}, "named:x"},
		{"error", errors.New("bad"), "bad"},
		{"string", "hello", "hello"},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"nil", nil, "<nil>"},
		{"opaque", opaque{}, "obscure message of type devs.opaque"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatMessage(tc.msg))
		})
	}
}

func TestImplode(t *testing.T) {
	assert.Equal(t, "{}", Implode(nil))
	assert.Equal(t, "{1}", Implode([]Message{1}))
	assert.Equal(t, "{1, named:a, obscure message of type *devs.opaque}",
		Implode([]Message{1, named{"a"}, &opaque{}}))
}
