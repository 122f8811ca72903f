package plan

// Chapter represents a single named time sub-range of the source media, as
// declared by the source platform. Chapters are immutable once obtained and
// keep the order reported by the fetch engine; the 1-based position in that
// sequence is the chapter index.
type Chapter struct {
	Title string   `json:"title"`
	Start *float64 `json:"start_time"`
	End   *float64 `json:"end_time"`
}

// StartSeconds returns the effective start bound. A missing or negative
// start is treated as the beginning of the source.
func (c Chapter) StartSeconds() float64 {
	if c.Start == nil || *c.Start < 0 {
		return 0
	}
	return *c.Start
}
