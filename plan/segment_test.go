package plan

import (
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func fp(v float64) *float64 { return &v }

func TestBuild(t *testing.T) {
	Convey("Build", t, func() {
		dir := filepath.Join("out")

		Convey("With distinct chapter titles", func() {
			chapters := []Chapter{
				{Title: "Intro", Start: fp(0), End: fp(30)},
				{Title: "Middle", Start: fp(30), End: fp(60)},
				{Title: "Outro", Start: fp(60)},
			}
			segments := Build("My Video", chapters, "mp4", dir)

			Convey("No filename carries an index prefix", func() {
				So(segments[0].OutputPath, ShouldEqual, filepath.Join(dir, "Intro.mp4"))
				So(segments[1].OutputPath, ShouldEqual, filepath.Join(dir, "Middle.mp4"))
				So(segments[2].OutputPath, ShouldEqual, filepath.Join(dir, "Outro.mp4"))
			})

			Convey("Indexes are 1-based and ordered", func() {
				for i, s := range segments {
					So(s.Index, ShouldEqual, i+1)
				}
			})

			Convey("Final chapter keeps an open end bound", func() {
				So(segments[2].End, ShouldBeNil)
			})
		})

		Convey("With titles colliding under case folding", func() {
			chapters := []Chapter{
				{Title: "Intro", Start: fp(0), End: fp(30)},
				{Title: "intro", Start: fp(30), End: fp(60)},
			}
			segments := Build("My Video", chapters, "mp3", dir)

			Convey("Every filename carries a zero-padded prefix", func() {
				So(segments[0].OutputPath, ShouldEqual, filepath.Join(dir, "01 - Intro.mp3"))
				So(segments[1].OutputPath, ShouldEqual, filepath.Join(dir, "02 - intro.mp3"))
			})

			Convey("Output paths stay unique", func() {
				So(segments[0].OutputPath, ShouldNotEqual, segments[1].OutputPath)
			})
		})

		Convey("With a collision buried in a larger batch", func() {
			chapters := []Chapter{
				{Title: "One", Start: fp(0), End: fp(10)},
				{Title: "Two", Start: fp(10), End: fp(20)},
				{Title: "one", Start: fp(20), End: fp(30)},
			}
			segments := Build("My Video", chapters, "mkv", dir)

			Convey("The prefix applies to the whole batch, not just colliders", func() {
				for _, s := range segments {
					So(filepath.Base(s.OutputPath), ShouldStartWith, "0")
					So(filepath.Base(s.OutputPath), ShouldContainSubstring, " - ")
				}
			})
		})

		Convey("With titles that collide only after sanitization", func() {
			chapters := []Chapter{
				{Title: "a/b", Start: fp(0), End: fp(10)},
				{Title: "a?b", Start: fp(10)},
			}
			segments := Build("My Video", chapters, "mp4", dir)
			So(segments[0].SafeName, ShouldEqual, "01 - a_b")
			So(segments[1].SafeName, ShouldEqual, "02 - a_b")
		})

		Convey("With a missing start time", func() {
			chapters := []Chapter{
				{Title: "Only", Start: nil, End: fp(42)},
			}
			segments := Build("My Video", chapters, "mp4", dir)
			So(segments[0].Start, ShouldEqual, 0)
		})

		Convey("With zero chapters", func() {
			segments := Build("A Video: Part/One", nil, "webm", dir)

			Convey("Exactly one whole-file segment is planned", func() {
				So(len(segments), ShouldEqual, 1)
				So(segments[0].Index, ShouldEqual, 1)
				So(segments[0].Start, ShouldEqual, 0)
				So(segments[0].End, ShouldBeNil)
			})

			Convey("It is named from the sanitized video title", func() {
				base := filepath.Base(segments[0].OutputPath)
				So(base, ShouldEqual, "A Video_ Part_One.webm")
			})
		})

		Convey("Extension always comes from the container", func() {
			chapters := []Chapter{{Title: "clip.avi", Start: fp(0), End: fp(5)}}
			segments := Build("t", chapters, "mp4", dir)
			So(strings.HasSuffix(segments[0].OutputPath, ".mp4"), ShouldBeTrue)
		})
	})
}
