package test

import (
	"math"
	"sync"
	"time"

	"github.com/loilo-inc/mockcage/types"
)

// FakeTime hands out timers that fire immediately, or when Release is
// called if it was created with NewGatedTime.
type FakeTime struct {
	mux       sync.Mutex
	durations []time.Duration
	gate      chan struct{}
	started   chan time.Duration
}

var _ types.Time = (*FakeTime)(nil)

func NewFakeTime() *FakeTime {
	return &FakeTime{started: make(chan time.Duration, 64)}
}

func NewGatedTime() *FakeTime {
	return &FakeTime{
		gate:    make(chan struct{}),
		started: make(chan time.Duration, 64),
	}
}

func (f *FakeTime) Now() time.Time {
	return time.Now()
}

func (f *FakeTime) NewTimer(d time.Duration) *time.Timer {
	f.mux.Lock()
	f.durations = append(f.durations, d)
	f.mux.Unlock()
	ch := make(chan time.Time, 1)
	gate := f.gate
	go func() {
		if gate != nil {
			<-gate
		}
		ch <- time.Now()
	}()
	select {
	case f.started <- d:
	default:
	}
	// a real timer that never fires, so Stop works; C is replaced
	t := time.NewTimer(math.MaxInt64)
	t.C = ch
	return t
}

// Started yields the duration of each timer as it is created.
func (f *FakeTime) Started() <-chan time.Duration {
	return f.started
}

// Release fires every pending and future timer.
func (f *FakeTime) Release() {
	f.mux.Lock()
	defer f.mux.Unlock()
	if f.gate != nil {
		select {
		case <-f.gate:
		default:
			close(f.gate)
		}
	}
}

func (f *FakeTime) Durations() []time.Duration {
	f.mux.Lock()
	defer f.mux.Unlock()
	return append([]time.Duration(nil), f.durations...)
}
