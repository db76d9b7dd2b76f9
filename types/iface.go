package types

//go:generate mockgen -source=$GOFILE -destination=../mocks/mock_$GOPACKAGE/$GOFILE -package=mock_$GOPACKAGE

import (
	"context"
	"time"
)

type Time interface {
	Now() time.Time
	NewTimer(time.Duration) *time.Timer
}

// Server serves the data and control endpoints until ctx is done.
type Server interface {
	Run(ctx context.Context) error
}

// Client talks to a running mockcage server.
type Client interface {
	SetBehavior(ctx context.Context, token string) (string, error)
	Probe(ctx context.Context) (*ProbeResult, error)
}

type ProbeResult struct {
	StatusCode int
	Body       string
	Elapsed    time.Duration
}

type UpgradeInput struct {
	CurrentVersion string
	PreRelease     bool
	TargetPath     string
}

type Upgrader interface {
	Upgrade(ctx context.Context, input *UpgradeInput) error
}
