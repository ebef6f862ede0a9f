package ingest

import "time"

// Window is the half-open scan interval (Start, End]. A video published
// exactly at Start belongs to the previous run; one published exactly at End
// belongs to this run.
type Window struct {
	Start time.Time
	End   time.Time
}

// ComputeWindow derives the scan window for one channel run. With no prior
// watermark the window reaches back by fallback from now; otherwise it starts
// at the watermark, so latency between runs widens the next window instead of
// opening a gap.
func ComputeWindow(watermark *time.Time, now time.Time, fallback time.Duration) Window {
	if watermark == nil {
		return Window{Start: now.Add(-fallback), End: now}
	}
	return Window{Start: *watermark, End: now}
}

func (w Window) Contains(t time.Time) bool {
	return t.After(w.Start) && !t.After(w.End)
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
