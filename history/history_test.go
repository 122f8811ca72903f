package history

import (
	"testing"
	"time"

	"github.com/chapsplit-cli/chapsplit/filesystem"
	"github.com/chapsplit-cli/chapsplit/plan"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given a completed run", t, func() {
		run := SavedRun{
			URL:        "https://example.com/watch?v=abc123",
			Title:      "A Long Talk",
			Mode:       plan.ModeAudio,
			Container:  "mp3",
			Segments:   12,
			Failed:     1,
			OutputDir:  "/downloads/chapsplit",
			FinishedAt: time.Now(),
		}

		Convey("When saving the run", func() {
			err := Save(&run)
			Convey("Then the error should be nil", func() {
				So(err, ShouldBeNil)

				Convey("And the run should be saved", func() {
					runs, err := Get()
					So(err, ShouldBeNil)
					So(len(runs), ShouldBeGreaterThan, 0)
					So(runs[run.encode()].Title, ShouldEqual, run.Title)
				})
			})
		})

		Convey("When removing the run", func() {
			So(Save(&run), ShouldBeNil)
			So(Remove(&run), ShouldBeNil)

			runs, err := Get()
			So(err, ShouldBeNil)
			So(runs[run.encode()], ShouldBeNil)
		})
	})
}
