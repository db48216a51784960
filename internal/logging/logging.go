// Package logging builds the logrus loggers used by the CLI and Workspace.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// GetLevel maps a level name onto a logrus level. The empty name is info.
func GetLevel(level string) (logrus.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel, nil
	case "", "info":
		return logrus.InfoLevel, nil
	case "warn":
		return logrus.WarnLevel, nil
	case "error":
		return logrus.ErrorLevel, nil
	default:
		return logrus.DebugLevel, fmt.Errorf("invalid log level: %v", level)
	}
}

// GetFormatter returns the formatter for "text", "json-pretty" or (default)
// "json".
func GetFormatter(format, timestampFormat string) logrus.Formatter {
	switch format {
	case "text":
		return &prettyFormatter{}
	case "json-pretty":
		return &logrus.JSONFormatter{PrettyPrint: true, TimestampFormat: timestampFormat}
	default:
		return &logrus.JSONFormatter{TimestampFormat: timestampFormat}
	}
}

// New returns a logger writing to w with the given level and format.
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.SetFormatter(GetFormatter(format, ""))
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// prettyFormatter prints "[LEVEL] message" followed by one indented line per
// field, sorted by key. JSON-looking strings are re-indented.
type prettyFormatter struct{}

const (
	fieldIndent     = 2
	multiLineIndent = 6
)

func (p *prettyFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b := new(bytes.Buffer)
	fmt.Fprintf(b, "[%s] %s\n", strings.ToUpper(e.Level.String()), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		val, err := fieldText(e.Data[k])
		if err != nil {
			return nil, err
		}
		b.WriteString(strings.Repeat(" ", fieldIndent))
		b.WriteString(k)
		if strings.Contains(val, "\n") {
			b.WriteString(" = |\n")
			b.WriteString(strings.Repeat(" ", multiLineIndent))
		} else {
			b.WriteString(" = ")
		}
		b.WriteString(val)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

func fieldText(v any) (string, error) {
	prefix := strings.Repeat(" ", multiLineIndent)
	switch x := v.(type) {
	case string:
		if strings.Contains(x, "\n") {
			return strings.ReplaceAll(strings.TrimSuffix(x, "\n"), "\n", "\n"+prefix), nil
		}
		if (strings.HasPrefix(x, "{") || strings.HasPrefix(x, "[")) && gojson.Valid([]byte(x)) {
			var buf bytes.Buffer
			if err := gojson.Indent(&buf, []byte(x), prefix, "  "); err != nil {
				return "", err
			}
			return buf.String(), nil
		}
		return x, nil
	case error:
		return x.Error(), nil
	}
	out, err := gojson.MarshalIndent(v, prefix, "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
