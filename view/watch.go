package view

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/encodeous/dvsim/core"
	"github.com/encodeous/dvsim/state"
	"github.com/gdamore/tcell/v2"
)

// Watch renders rounds as they complete, paced by a fixed delay per round.
// The simulation runs at full speed; Watch replays the snapshot stream at
// its own pace and keeps the final tables on screen until a key is pressed.
type Watch struct {
	env   *state.Env
	delay time.Duration
}

func NewWatch(env *state.Env, delay time.Duration) *Watch {
	if delay <= 0 {
		delay = state.DefaultWatchDelay
	}
	return &Watch{env: env, delay: delay}
}

// Run drives the ui until the user quits, or the run ends and the stream is
// drained. Must be called on the goroutine that owns the terminal.
func (w *Watch) Run(tr *core.Trace, done <-chan core.Outcome) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	screen := &Screen{Screen: s}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.Reset()
	screen.Show()

	snaps := make(chan interface{}, 1024)
	tr.Register(snaps)
	defer tr.Unregister(snaps)

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var (
		pending    []core.RoundSnapshot
		last       core.RoundSnapshot
		out        *core.Outcome
		have       bool
		ready      = true
		finalDrawn bool
		timerC     <-chan time.Time
	)

	for {
		if ready && len(pending) > 0 {
			last, pending = pending[0], pending[1:]
			have = true
			finalDrawn = false
			w.draw(screen, last, nil)
			ready = false
			timerC = time.After(w.delay)
		}
		if out != nil && len(pending) == 0 && ready && !finalDrawn {
			w.draw(screen, last, out)
			finalDrawn = true
		}

		select {
		case v := <-snaps:
			if snap, ok := v.(core.RoundSnapshot); ok {
				pending = append(pending, snap)
			}
		case o := <-done:
			out = &o
			done = nil
		case <-timerC:
			ready = true
			timerC = nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Reset()
				if have {
					var banner *core.Outcome
					if finalDrawn {
						banner = out
					}
					w.draw(screen, last, banner)
				}
				screen.Show()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					w.env.Cancel(errors.New("watch closed"))
					return nil
				}
				if finalDrawn {
					return nil
				}
			}
		}
	}
}

func (w *Watch) draw(s *Screen, snap core.RoundSnapshot, out *core.Outcome) {
	s.Reset()
	sty := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	s.DrawText(0, 0, sty.Bold(true), "dvsim")
	s.DrawText(7, 0, sty, fmt.Sprintf("round %d, %d updates", snap.Round, snap.Updates))

	switch {
	case out == nil:
		s.DrawText(0, 1, sty.Foreground(tcell.ColorGray), "replaying rounds, q to quit")
	case out.Phase == core.Converged:
		s.DrawText(0, 1, sty.Foreground(tcell.ColorGreen), fmt.Sprintf("converged in %d rounds, press any key", out.Rounds))
	default:
		s.DrawText(0, 1, sty.Foreground(tcell.ColorYellow), fmt.Sprintf("round limit reached after %d rounds, press any key", out.Rounds))
	}

	ids := slices.Sorted(maps.Keys(snap.Tables))
	const boxW = 22
	cols := max(1, displayWidth/(boxW+2))
	boxH := len(ids) + 3
	for i, id := range ids {
		x := (i % cols) * (boxW + 2)
		y := 3 + (i/cols)*(boxH+1)
		drawTable(s, x, y, id, snap.Tables[id], sty)
	}
	s.Show()
}

func drawTable(s *Screen, x, y int, id state.NodeId, table state.RoutingTable, sty tcell.Style) {
	dsts := slices.Sorted(maps.Keys(table.Entries))
	s.DrawBox(x, y, x+21, y+len(dsts)+2, sty, false)
	s.DrawText(x+2, y, sty.Bold(true), " "+string(id)+" ")
	s.DrawText(x+1, y+1, sty, fmt.Sprintf("%-6s %-6s %6s", "dest", "nh", "met"))
	for i, dst := range dsts {
		e := table.Entries[dst]
		s.DrawText(x+1, y+2+i, sty, fmt.Sprintf("%-6s %-6s %6s",
			trunc(string(dst), 6), trunc(NhString(e), 6), MetricString(e.Metric)))
	}
}

func trunc(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
