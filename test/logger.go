package test

import (
	"fmt"
	"strings"
	"sync"

	"github.com/apex/log"
	"github.com/loilo-inc/mockcage/logger"
)

// LogRecorder is a log.Handler keeping every entry in memory.
type LogRecorder struct {
	mux     sync.Mutex
	entries []*log.Entry
}

var _ log.Handler = (*LogRecorder)(nil)

// NewLogger returns a debug-level logger recording into a LogRecorder.
func NewLogger() (*log.Logger, *LogRecorder) {
	h := &LogRecorder{}
	return &log.Logger{Handler: h, Level: log.DebugLevel}, h
}

func (r *LogRecorder) HandleLog(e *log.Entry) error {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *LogRecorder) Entries() []*log.Entry {
	r.mux.Lock()
	defer r.mux.Unlock()
	return append([]*log.Entry(nil), r.entries...)
}

func (r *LogRecorder) Messages() []string {
	var ret []string
	for _, e := range r.Entries() {
		ret = append(ret, e.Message)
	}
	return ret
}

type MockPrinter struct {
	Stdout []string
	Stderr []string
}

var _ logger.Printer = (*MockPrinter)(nil)

func NewMockPrinter() *MockPrinter {
	return &MockPrinter{}
}

func (m *MockPrinter) PrintOutf(format string, args ...any) {
	m.Stdout = append(m.Stdout, fmt.Sprintf(format, args...))
}

func (m *MockPrinter) PrintErrf(format string, args ...any) {
	m.Stderr = append(m.Stderr, fmt.Sprintf(format, args...))
}

func (m *MockPrinter) Out() string {
	return strings.Join(m.Stdout, "")
}
