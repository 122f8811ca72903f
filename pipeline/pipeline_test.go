package pipeline

import (
	"testing"

	"github.com/chapsplit-cli/chapsplit/plan"
	. "github.com/smartystreets/goconvey/convey"
)

func fp(v float64) *float64 { return &v }

func TestProgressLabel(t *testing.T) {
	Convey("Given planned segments", t, func() {
		segments := plan.Build("Talk", []plan.Chapter{
			{Title: "Intro", Start: fp(0)},
			{Title: "Main", Start: fp(10)},
			{Title: "Outro", Start: fp(20)},
		}, "mp4", "/downloads")

		Convey("The counter should start at 1 and end at the segment count", func() {
			So(progressLabel(segments[0], len(segments)), ShouldEqual, "[1/3] Intro")
			So(progressLabel(segments[2], len(segments)), ShouldEqual, "[3/3] Outro")
		})
	})
}

func TestKeepInPlace(t *testing.T) {
	Convey("Given a chapterless source", t, func() {
		segments := plan.Build("My Video", nil, "mp4", "/downloads")
		So(segments, ShouldHaveLength, 1)
		whole := segments[0]

		Convey("When the download already landed at the planned output path", func() {
			Convey("The segment should be kept as-is instead of extracted", func() {
				So(whole.OutputPath, ShouldEqual, "/downloads/My Video.mp4")
				So(keepInPlace(whole, "/downloads/My Video.mp4"), ShouldBeTrue)
			})
		})

		Convey("When the download landed elsewhere", func() {
			Convey("The whole file should still be extracted", func() {
				So(keepInPlace(whole, "/downloads/My Video.webm"), ShouldBeFalse)
			})
		})
	})

	Convey("Given a bounded chapter segment", t, func() {
		segments := plan.Build("My Video", []plan.Chapter{
			{Title: "My Video", Start: fp(0), End: fp(30)},
			{Title: "Rest", Start: fp(30)},
		}, "mp4", "/downloads")

		Convey("A matching output path should never skip extraction", func() {
			So(segments[0].OutputPath, ShouldEqual, "/downloads/My Video.mp4")
			So(keepInPlace(segments[0], "/downloads/My Video.mp4"), ShouldBeFalse)
		})
	})
}
