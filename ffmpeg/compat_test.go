package ffmpeg

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCopySupported(t *testing.T) {
	Convey("CopySupported", t, func() {
		Convey("mp4 accepts its codec whitelist", func() {
			So(CopySupported("mp4", "h264", "aac"), ShouldBeTrue)
			So(CopySupported("mp4", "hevc", "mp3"), ShouldBeTrue)
			So(CopySupported("mp4", "av1", "alac"), ShouldBeTrue)
		})

		Convey("mp4 rejects vp9 and opus", func() {
			So(CopySupported("mp4", "vp9", "aac"), ShouldBeFalse)
			So(CopySupported("mp4", "h264", "opus"), ShouldBeFalse)
		})

		Convey("webm accepts its codec whitelist", func() {
			So(CopySupported("webm", "vp9", "opus"), ShouldBeTrue)
			So(CopySupported("webm", "h264", "aac"), ShouldBeFalse)
		})

		Convey("mkv accepts anything", func() {
			So(CopySupported("mkv", "vp9", "opus"), ShouldBeTrue)
			So(CopySupported("mkv", "h264", "aac"), ShouldBeTrue)
			So(CopySupported("mkv", "prores", "truehd"), ShouldBeTrue)
		})

		Convey("Unknown containers are never copy-safe", func() {
			So(CopySupported("avi", "h264", "mp3"), ShouldBeFalse)
		})
	})
}

func TestParseStreamsJSON(t *testing.T) {
	Convey("ParseStreamsJSON", t, func() {
		Convey("Extracts primary codecs", func() {
			raw, _ := json.Marshal(map[string]any{
				"streams": []map[string]any{
					{"codec_name": "vp9", "codec_type": "video"},
					{"codec_name": "opus", "codec_type": "audio"},
				},
			})
			info, err := ParseStreamsJSON(raw)
			So(err, ShouldBeNil)
			So(info.VideoCodec, ShouldEqual, "vp9")
			So(info.AudioCodec, ShouldEqual, "opus")
		})

		Convey("Skips attached cover art", func() {
			raw, _ := json.Marshal(map[string]any{
				"streams": []map[string]any{
					{"codec_name": "mjpeg", "codec_type": "video", "disposition": map[string]int{"attached_pic": 1}},
					{"codec_name": "flac", "codec_type": "audio"},
				},
			})
			info, err := ParseStreamsJSON(raw)
			So(err, ShouldBeNil)
			So(info.VideoCodec, ShouldBeEmpty)
			So(info.AudioCodec, ShouldEqual, "flac")
		})

		Convey("Rejects malformed JSON", func() {
			_, err := ParseStreamsJSON([]byte("{"))
			So(err, ShouldNotBeNil)
		})
	})
}
