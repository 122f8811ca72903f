package util

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "segment", "segments"), ShouldEqual, "1 segment")
		So(Quantify(2, "segment", "segments"), ShouldEqual, "2 segments")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("hello"), ShouldEqual, "Hello")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/file.mp4"), ShouldEqual, "file")
		So(FileStem("file"), ShouldEqual, "file")
	})
}
