package cache

import (
	"testing"

	"github.com/chapsplit-cli/chapsplit/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestGenerateKey(t *testing.T) {
	Convey("GenerateKey", t, func() {
		Convey("Is deterministic", func() {
			So(GenerateKey("https://example.com/v"), ShouldEqual, GenerateKey("https://example.com/v"))
		})

		Convey("Normalizes case and surrounding whitespace", func() {
			So(GenerateKey(" https://EXAMPLE.com/v "), ShouldEqual, GenerateKey("https://example.com/v"))
		})

		Convey("Distinct URLs yield distinct keys", func() {
			So(GenerateKey("https://example.com/a"), ShouldNotEqual, GenerateKey("https://example.com/b"))
		})
	})
}

func TestReadWrite(t *testing.T) {
	Convey("Read/Write round trip", t, func() {
		type payload struct {
			Title string `json:"title"`
		}

		key := GenerateKey("https://example.com/roundtrip")
		So(Write(key, payload{Title: "hello"}), ShouldBeNil)

		var got payload
		So(Read(key, &got), ShouldBeTrue)
		So(got.Title, ShouldEqual, "hello")
	})

	Convey("Read misses for unknown keys", t, func() {
		var got map[string]any
		So(Read("missing", &got), ShouldBeFalse)
	})
}
