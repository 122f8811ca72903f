package plan

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewPolicy(t *testing.T) {
	Convey("NewPolicy", t, func() {
		Convey("Accepts every allowed video container", func() {
			for _, c := range VideoContainers {
				_, err := NewPolicy(ModeVideo, c, 0, 1080)
				So(err, ShouldBeNil)
			}
		})

		Convey("Accepts every allowed audio container", func() {
			for _, c := range AudioContainers {
				_, err := NewPolicy(ModeAudio, c, 192, 0)
				So(err, ShouldBeNil)
			}
		})

		Convey("Rejects containers outside the allow-list", func() {
			_, err := NewPolicy(ModeVideo, "avi", 0, 0)
			So(errors.Is(err, ErrUnsupportedFormat), ShouldBeTrue)

			_, err = NewPolicy(ModeAudio, "mp4", 0, 0)
			So(errors.Is(err, ErrUnsupportedFormat), ShouldBeTrue)
		})

		Convey("Rejects audio containers in video mode", func() {
			_, err := NewPolicy(ModeVideo, "mp3", 0, 0)
			So(errors.Is(err, ErrUnsupportedFormat), ShouldBeTrue)
		})

		Convey("Rejects negative resolution ceilings", func() {
			_, err := NewPolicy(ModeVideo, "mp4", 0, -720)
			So(errors.Is(err, ErrUnsupportedFormat), ShouldBeTrue)
		})

		Convey("Zero height means unbounded", func() {
			p, err := NewPolicy(ModeVideo, "mkv", 0, 0)
			So(err, ShouldBeNil)
			So(p.MaxHeight, ShouldEqual, 0)
		})
	})
}

func TestEffectiveBitrate(t *testing.T) {
	Convey("EffectiveBitrate", t, func() {
		Convey("Lossy audio keeps the bitrate", func() {
			p, _ := NewPolicy(ModeAudio, "mp3", 320, 0)
			So(p.EffectiveBitrate(), ShouldEqual, 320)
		})

		Convey("Lossless audio drops a supplied bitrate", func() {
			for _, c := range []string{"flac", "wav"} {
				p, _ := NewPolicy(ModeAudio, c, 320, 0)
				So(p.Lossless(), ShouldBeTrue)
				So(p.EffectiveBitrate(), ShouldEqual, 0)
			}
		})

		Convey("Video mode never passes an audio bitrate", func() {
			p, _ := NewPolicy(ModeVideo, "mp4", 320, 0)
			So(p.EffectiveBitrate(), ShouldEqual, 0)
		})
	})
}
