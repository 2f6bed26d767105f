package engine

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Formatter renders logrus entries as `LEVEL [stamp] message k=v ...`.
// Fields are written in key order so lines are stable across runs.
type Formatter struct{}

// Format converts a logrus entry into a single log line.
func (f Formatter) Format(entry *log.Entry) ([]byte, error) {
	b := &bytes.Buffer{}

	level := strings.ToUpper(entry.Level.String())
	fmt.Fprintf(b, "%s [%s] %-40s", level, entry.Time.Format(time.StampMilli),
		entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%+v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// discardLogger is used when no logger is configured.
func discardLogger() log.FieldLogger {
	l := log.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(Formatter{})
	return l
}
