package core

// Recorder is an Observer that retains every round snapshot in order.
type Recorder struct {
	History []RoundSnapshot
}

func (r *Recorder) RoundComplete(snap RoundSnapshot) {
	r.History = append(r.History, snap)
}

// Last returns the most recent snapshot, or nil before the first round.
func (r *Recorder) Last() *RoundSnapshot {
	if len(r.History) == 0 {
		return nil
	}
	return &r.History[len(r.History)-1]
}
