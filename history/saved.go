package history

import (
	"fmt"
	"time"

	"github.com/chapsplit-cli/chapsplit/plan"
)

// SavedRun represents a single completed split run preserved in the user's history.
type SavedRun struct {
	URL        string    `json:"url"`
	Title      string    `json:"title"`
	Mode       plan.Mode `json:"mode"`
	Container  string    `json:"container"`
	Segments   int       `json:"segments"`
	Failed     int       `json:"failed"`
	OutputDir  string    `json:"output_dir"`
	FinishedAt time.Time `json:"finished_at"`
}

func (s *SavedRun) encode() string {
	return fmt.Sprintf("%s (%s/%s)", s.URL, s.Mode, s.Container)
}

func (s *SavedRun) String() string {
	return fmt.Sprintf("%s : %d / %d segments", s.Title, s.Segments-s.Failed, s.Segments)
}
