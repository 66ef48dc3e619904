package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

const lineLength = 50

type Logger struct {
	mu   sync.Mutex
	f    *os.File
	echo io.Writer
}

func NewLogger(path string) (*Logger, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Logger{f: f}, nil
}

// EchoTo mirrors every line to w (typically stdout) in addition to the file.
func (l *Logger) EchoTo(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.echo = w
}

func (l *Logger) Log(format string, args ...interface{}) {
	l.write(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.write("ERROR: " + fmt.Sprintf(format, args...))
}

func (l *Logger) write(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.f, line)
	if l.echo != nil {
		fmt.Fprintln(l.echo, line)
	}
}

func (l *Logger) Close() error {
	return l.f.Close()
}

// banner returns a full-width line of ch.
func banner(ch string) string {
	return strings.Repeat(ch, lineLength)
}

// centered pads s with fill on both sides to the standard line length.
func centered(s, fill string) string {
	if len(s) >= lineLength {
		return s
	}
	total := lineLength - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, right)
}

// LogSink renders pipeline events as human-readable log lines.
type LogSink struct {
	l *Logger
}

func NewLogSink(l *Logger) *LogSink {
	return &LogSink{l: l}
}

func (s *LogSink) BatchStart(folder string, total int) {
	s.l.Log("%s", banner("*"))
	s.l.Log("%s", centered(fmt.Sprintf(" %s (%d files) ", folder, total), "*"))
}

func (s *LogSink) BatchEnd(folder string) {}

func (s *LogSink) ExtensionStart(ext string, count int) {
	s.l.Log("%s", centered(" "+strings.ToUpper(ext)+" ", "="))
	s.l.Log("%d files being renamed...", count)
	s.l.Log("%s", banner("-"))
}

func (s *LogSink) ConflictPhase(folder string) {
	s.l.Log("%s", banner("*"))
	s.l.Log("%s", centered("CONFLICTS RUNNING", " "))
}

func (s *LogSink) ConflictDetected(no int, otherName string, otherNo int) {
	s.l.Log("%d- %s: Conflict detected", no, otherName)
}

func (s *LogSink) FileRenamed(no int, from, to string) {
	s.l.Log("%d- %s >> %s: Completed", no, from, to)
}

func (s *LogSink) FileUnchanged(no int, name string) {
	s.l.Log("%d- %s: File names are identical", no, name)
}

func (s *LogSink) FileError(no int, from, to string, err error) {
	s.l.Error("%d- %s - %s: %v", no, from, to, err)
}
