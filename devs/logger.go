package devs

import (
	"github.com/sirupsen/logrus"
)

// Category tags a log message with the part of the protocol that produced it.
type Category string

const (
	CategoryInfo           Category = "info"
	CategoryDebug          Category = "debug"
	CategoryState          Category = "state"
	CategoryLocalTime      Category = "local_time"
	CategoryGlobalTime     Category = "global_time"
	CategoryMessages       Category = "messages"
	CategoryMessageRouting Category = "message_routing"
)

// Logger is the sink engines report to. Log receives a producer rather than
// a string so that a disabled sink never pays for formatting.
type Logger interface {
	Enabled(c Category) bool
	Log(c Category, msg func() string)
}

// Emit sends msg to l if the category is enabled. A sink that panics has its
// message dropped; logging never interrupts a simulation.
func Emit(l Logger, c Category, msg func() string) {
	if l == nil || !l.Enabled(c) {
		return
	}
	defer func() { _ = recover() }()
	l.Log(c, msg)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Enabled(Category) bool       { return false }
func (NopLogger) Log(Category, func() string) {}

// categoryLevels maps categories onto logrus levels.
var categoryLevels = map[Category]logrus.Level{
	CategoryInfo:           logrus.InfoLevel,
	CategoryDebug:          logrus.DebugLevel,
	CategoryState:          logrus.DebugLevel,
	CategoryLocalTime:      logrus.TraceLevel,
	CategoryGlobalTime:     logrus.InfoLevel,
	CategoryMessages:       logrus.DebugLevel,
	CategoryMessageRouting: logrus.TraceLevel,
}

// LogrusLogger writes to a logrus logger, one entry per message with a
// "category" field. A category is enabled when its level would be emitted.
type LogrusLogger struct {
	entry *logrus.Entry
}

// NewLogrusLogger wraps l. A nil l uses the logrus standard logger.
func NewLogrusLogger(l *logrus.Logger) *LogrusLogger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &LogrusLogger{entry: logrus.NewEntry(l)}
}

func (l *LogrusLogger) level(c Category) logrus.Level {
	if lvl, ok := categoryLevels[c]; ok {
		return lvl
	}
	return logrus.DebugLevel
}

func (l *LogrusLogger) Enabled(c Category) bool {
	return l.entry.Logger.IsLevelEnabled(l.level(c))
}

func (l *LogrusLogger) Log(c Category, msg func() string) {
	l.entry.WithField("category", string(c)).Log(l.level(c), msg())
}

// MultiLogger fans messages out to several sinks. The producer runs at most
// once no matter how many sinks are enabled.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger drops nil sinks.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	filtered := make([]Logger, 0, len(loggers))
	for _, l := range loggers {
		if l != nil {
			filtered = append(filtered, l)
		}
	}
	return &MultiLogger{loggers: filtered}
}

func (m *MultiLogger) Enabled(c Category) bool {
	for _, l := range m.loggers {
		if l.Enabled(c) {
			return true
		}
	}
	return false
}

func (m *MultiLogger) Log(c Category, msg func() string) {
	var text string
	built := false
	once := func() string {
		if !built {
			text, built = msg(), true
		}
		return text
	}
	for _, l := range m.loggers {
		Emit(l, c, once)
	}
}

// CategoryFilter passes only the listed categories through to Next.
type CategoryFilter struct {
	Next  Logger
	Allow map[Category]bool
}

// FilterCategories wraps next so that only cats reach it.
func FilterCategories(next Logger, cats ...Category) *CategoryFilter {
	allow := make(map[Category]bool, len(cats))
	for _, c := range cats {
		allow[c] = true
	}
	return &CategoryFilter{Next: next, Allow: allow}
}

func (f *CategoryFilter) Enabled(c Category) bool {
	return f.Allow[c] && f.Next != nil && f.Next.Enabled(c)
}

func (f *CategoryFilter) Log(c Category, msg func() string) {
	if f.Next == nil {
		return
	}
	f.Next.Log(c, msg)
}
