package timeout

import (
	"time"

	"github.com/loilo-inc/mockcage/types"
)

// Default is how long the timeout behavior holds a request.
const Default = 120 * time.Second

type Time struct{}

var _ types.Time = (*Time)(nil)

func (t *Time) Now() time.Time {
	return time.Now()
}
func (t *Time) NewTimer(d time.Duration) *time.Timer {
	return time.NewTimer(d)
}

// Seconds converts a second count from config, falling back to Default
// when it is not positive.
func Seconds(sec int) time.Duration {
	if sec > 0 {
		return time.Duration(sec) * time.Second
	}
	return Default
}
