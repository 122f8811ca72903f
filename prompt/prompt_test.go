package prompt

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestValidURL(t *testing.T) {
	Convey("When the answer is an absolute http(s) URL", t, func() {
		Convey("It should be accepted", func() {
			So(validURL("https://example.com/watch?v=abc"), ShouldBeNil)
			So(validURL("http://example.com/clip"), ShouldBeNil)
			So(validURL("  https://example.com/clip  "), ShouldBeNil)
		})
	})

	Convey("When the answer is not an http(s) URL", t, func() {
		Convey("It should be rejected", func() {
			So(validURL("ftp://example.com/file"), ShouldNotBeNil)
			So(validURL("example.com/watch"), ShouldNotBeNil)
			So(validURL("https://"), ShouldNotBeNil)
			So(validURL("not a url"), ShouldNotBeNil)
		})
	})
}

func TestExpandHome(t *testing.T) {
	Convey("Given a path without a tilde", t, func() {
		Convey("It should pass through unchanged", func() {
			So(expandHome("/tmp/out"), ShouldEqual, "/tmp/out")
			So(expandHome("relative/dir"), ShouldEqual, "relative/dir")
		})
	})

	Convey("Given a path starting with ~/", t, func() {
		Convey("It should not keep the tilde", func() {
			So(expandHome("~/clips"), ShouldNotContainSubstring, "~")
		})
	})
}
