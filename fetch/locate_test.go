package fetch

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/chapsplit-cli/chapsplit/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLocate(t *testing.T) {
	Convey("Locate", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()

		dir := filepath.Join("downloads")
		So(fs.MkdirAll(dir, 0755), ShouldBeNil)

		// Engine with a non-existent binary: the prediction strategy
		// must fail cleanly and fall through to the directory scan.
		engine := &Engine{bin: "definitely-not-on-path"}
		ctx := context.Background()

		meta := &Metadata{Title: "My Talk"}

		Convey("Per-file download entries win when present", func() {
			path := filepath.Join(dir, "My Talk.mp4")
			So(fs.WriteFile(path, []byte("x"), 0644), ShouldBeNil)

			res := &Result{}
			raw := `{"requested_downloads":[{"filepath":"` + path + `"}]}`
			So(json.Unmarshal([]byte(raw), res), ShouldBeNil)

			got, err := engine.Locate(ctx, "u", meta, res, dir)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, path)
		})

		Convey("Top-level filename fields are the second strategy", func() {
			path := filepath.Join(dir, "My Talk.webm")
			So(fs.WriteFile(path, []byte("x"), 0644), ShouldBeNil)

			res := &Result{AltFilename: path}
			got, err := engine.Locate(ctx, "u", meta, res, dir)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, path)
		})

		Convey("Stale result paths are skipped, not trusted", func() {
			onDisk := filepath.Join(dir, "My Talk.mkv")
			So(fs.WriteFile(onDisk, []byte("x"), 0644), ShouldBeNil)

			res := &Result{Filename: filepath.Join(dir, "gone.mkv")}
			got, err := engine.Locate(ctx, "u", meta, res, dir)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, onDisk)
		})

		Convey("Directory scan picks the newest title match", func() {
			older := filepath.Join(dir, "My Talk.f137.mp4")
			newer := filepath.Join(dir, "My Talk.mp4")
			So(fs.WriteFile(older, []byte("x"), 0644), ShouldBeNil)
			So(fs.WriteFile(newer, []byte("x"), 0644), ShouldBeNil)
			So(fs.Chtimes(older, time.Now().Add(-time.Hour), time.Now().Add(-time.Hour)), ShouldBeNil)

			got, err := engine.Locate(ctx, "u", meta, nil, dir)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, newer)
		})

		Convey("Scan matches on the sanitized title", func() {
			sanitized := &Metadata{Title: "A/B: Test"}
			path := filepath.Join(dir, "A_B_ Test.mp4")
			So(fs.WriteFile(path, []byte("x"), 0644), ShouldBeNil)

			got, err := engine.Locate(ctx, "u", sanitized, nil, dir)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, path)
		})

		Convey("All strategies failing yields ErrSourceNotFound", func() {
			_, err := engine.Locate(ctx, "u", &Metadata{Title: "Nothing Here"}, nil, dir)
			So(err, ShouldWrap, ErrSourceNotFound)
		})
	})
}

func TestHasChapters(t *testing.T) {
	Convey("HasChapters", t, func() {
		var meta Metadata
		So(meta.HasChapters(), ShouldBeFalse)

		raw := `{"title":"t","chapters":[{"title":"a","start_time":0,"end_time":5}]}`
		So(json.Unmarshal([]byte(raw), &meta), ShouldBeNil)
		So(meta.HasChapters(), ShouldBeTrue)
		So(meta.Chapters[0].End, ShouldNotBeNil)
	})
}
