package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given two semantic versions", t, func() {
		Convey("The newer one should compare greater", func() {
			result, err := Compare("1.2.0", "1.1.9")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 1)
		})

		Convey("The older one should compare lower", func() {
			result, err := Compare("0.9.3", "1.0.0")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, -1)
		})

		Convey("Equal versions should compare equal", func() {
			result, err := Compare("2.0.1", "2.0.1")
			So(err, ShouldBeNil)
			So(result, ShouldEqual, 0)
		})
	})

	Convey("Given a malformed version", t, func() {
		Convey("Comparison should fail", func() {
			_, err := Compare("1.2", "1.2.3")
			So(err, ShouldNotBeNil)

			_, err = Compare("a.b.c", "1.2.3")
			So(err, ShouldNotBeNil)
		})
	})
}
