package pipeline

import (
	"errors"
	"testing"

	"github.com/chapsplit-cli/chapsplit/plan"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSummary(t *testing.T) {
	Convey("Given a report with one failed segment", t, func() {
		report := Report{
			Title: "A Long Talk",
			Dir:   "/downloads/chapsplit",
			Segments: []SegmentResult{
				{Segment: plan.Segment{SafeName: "01 - Intro.mp3"}},
				{Segment: plan.Segment{SafeName: "02 - Outro.mp3"}, Err: errors.New("boom")},
			},
			Failed: 1,
		}

		Convey("When rendering the summary", func() {
			summary := report.Summary()

			Convey("Then it should name the failed segment and the destination", func() {
				So(summary, ShouldContainSubstring, "02 - Outro.mp3")
				So(summary, ShouldContainSubstring, "1 file written")
				So(summary, ShouldContainSubstring, "/downloads/chapsplit")
			})
		})
	})

	Convey("Given a fully successful report", t, func() {
		report := Report{
			Title: "A Long Talk",
			Dir:   "/downloads/chapsplit",
			Segments: []SegmentResult{
				{Segment: plan.Segment{SafeName: "A Long Talk.mp3"}},
			},
		}

		Convey("Then the summary should not list any failures", func() {
			So(report.Summary(), ShouldContainSubstring, "Done")
			So(report.Summary(), ShouldNotContainSubstring, "Finished with errors")
		})
	})
}
