package console

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/pterm/pterm"
)

// Logger implements runtime.Logger on pterm's prefix printers.
type Logger struct {
	debug  bool
	fields map[string]interface{}
}

// NewLogger returns a console logger. Debug messages print only when debug is set.
func NewLogger(debug bool) *Logger {
	if debug {
		pterm.EnableDebugMessages()
	}
	return &Logger{debug: debug}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	if l.debug {
		pterm.Debug.Println(l.line(format, v...))
	}
}

func (l *Logger) Info(format string, v ...interface{}) {
	pterm.Info.Println(l.line(format, v...))
}

func (l *Logger) Warn(format string, v ...interface{}) {
	pterm.Warning.Println(l.line(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	pterm.Error.Println(l.line(format, v...))
}

func (l *Logger) WithField(key string, v interface{}) runtime.Logger {
	return l.WithFields(map[string]interface{}{key: v})
}

func (l *Logger) WithFields(fields map[string]interface{}) runtime.Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	maps.Copy(merged, l.fields)
	maps.Copy(merged, fields)
	return &Logger{debug: l.debug, fields: merged}
}

func (l *Logger) Fields() map[string]interface{} {
	return maps.Clone(l.fields)
}

// line formats the message and appends fields as sorted key=value pairs.
func (l *Logger) line(format string, v ...interface{}) string {
	msg := fmt.Sprintf(format, v...)
	if len(l.fields) == 0 {
		return msg
	}
	var b strings.Builder
	b.WriteString(msg)
	keys := make([]string, 0, len(l.fields))
	for k := range l.fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, l.fields[k])
	}
	return b.String()
}
