package core

import (
	"github.com/dustin/go-broadcast"
)

// Trace is an Observer that fans completed rounds out to any number of
// listeners. Listeners register plain channels and consume snapshots at
// their own pace.
type Trace struct {
	broadcast.Broadcaster
}

func NewTrace() *Trace {
	return &Trace{Broadcaster: broadcast.NewBroadcaster(1024)}
}

func (t *Trace) RoundComplete(snap RoundSnapshot) {
	t.Submit(snap)
}

func (t *Trace) Close() error {
	return t.Broadcaster.Close()
}
