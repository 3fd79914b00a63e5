package devs

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type captureLogger struct {
	enabled map[Category]bool
	lines   []string
	panics  bool
}

func (c *captureLogger) Enabled(cat Category) bool { return c.enabled[cat] }

func (c *captureLogger) Log(cat Category, msg func() string) {
	if c.panics {
		panic("sink failure")
	}
	c.lines = append(c.lines, string(cat)+": "+msg())
}

func TestEmit_DisabledSink_NeverBuildsMessage(t *testing.T) {
	// GIVEN a sink with every category disabled
	sink := &captureLogger{enabled: map[Category]bool{}}
	built := false

	// WHEN a message is emitted
	Emit(sink, CategoryMessageRouting, func() string { built = true; return "x" })
	Emit(NopLogger{}, CategoryInfo, func() string { built = true; return "x" })
	Emit(nil, CategoryInfo, func() string { built = true; return "x" })

	// THEN the producer is never invoked
	assert.False(t, built)
	assert.Empty(t, sink.lines)
}

func TestEmit_PanickingSink_IsContained(t *testing.T) {
	sink := &captureLogger{enabled: map[Category]bool{CategoryInfo: true}, panics: true}
	assert.NotPanics(t, func() {
		Emit(sink, CategoryInfo, func() string { return "x" })
	})
}

func TestMultiLogger_BuildsMessageOnce(t *testing.T) {
	a := &captureLogger{enabled: map[Category]bool{CategoryInfo: true}}
	b := &captureLogger{enabled: map[Category]bool{CategoryInfo: true}}
	off := &captureLogger{enabled: map[Category]bool{}}
	m := NewMultiLogger(a, nil, b, off)

	calls := 0
	Emit(m, CategoryInfo, func() string { calls++; return "hello" })

	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"info: hello"}, a.lines)
	assert.Equal(t, []string{"info: hello"}, b.lines)
	assert.Empty(t, off.lines)
	assert.False(t, m.Enabled(CategoryDebug))
}

func TestCategoryFilter_OnlyPassesAllowedCategories(t *testing.T) {
	sink := &captureLogger{enabled: map[Category]bool{CategoryInfo: true, CategoryDebug: true}}
	f := FilterCategories(sink, CategoryDebug)

	Emit(f, CategoryInfo, func() string { return "dropped" })
	Emit(f, CategoryDebug, func() string { return "kept" })

	assert.Equal(t, []string{"debug: kept"}, sink.lines)
}

func TestCategoryFilter_NilNext_DropsSilently(t *testing.T) {
	f := FilterCategories(nil, CategoryInfo)

	assert.False(t, f.Enabled(CategoryInfo))
	assert.NotPanics(t, func() {
		f.Log(CategoryInfo, func() string { return "nowhere to go" })
	})
}

func TestLogrusLogger_RespectsLevelAndTagsCategory(t *testing.T) {
	// GIVEN a logrus logger at debug level writing to a buffer
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	sink := NewLogrusLogger(l)

	// THEN trace-level categories are disabled and debug ones enabled
	assert.False(t, sink.Enabled(CategoryMessageRouting))
	assert.True(t, sink.Enabled(CategoryMessages))

	// WHEN a debug-level category is emitted
	Emit(sink, CategoryMessages, func() string { return "outputs ready" })

	// THEN the entry carries the category field
	assert.Contains(t, buf.String(), "outputs ready")
	assert.Contains(t, buf.String(), "category=messages")
}
