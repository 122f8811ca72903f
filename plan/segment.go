package plan

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Segment is one planned extraction: a named time range of the source
// mapped to a unique output path. Segments are not mutated after planning.
type Segment struct {
	Index       int
	SourceTitle string
	SafeName    string
	Start       float64

	// End is the exclusive upper time bound in seconds. Nil means
	// end-of-source: the extraction must omit an explicit end bound.
	End *float64

	OutputPath string
}

// Build derives the per-segment plan for a run.
//
// When the source reports no chapters the whole file becomes a single
// segment named after the video title. Otherwise one segment is planned per
// chapter, in chapter order. If any two chapter titles sanitize to the same
// case-folded stem, every filename in the batch receives a zero-padded
// 2-digit index prefix; otherwise none does. Output paths are therefore
// unique within a run by construction, with no filesystem checks.
//
// The extension always comes from the resolved container, never from the
// source file.
func Build(videoTitle string, chapters []Chapter, container, dir string) []Segment {
	if len(chapters) == 0 {
		stem := SanitizeTitle(videoTitle)
		return []Segment{{
			Index:       1,
			SourceTitle: videoTitle,
			SafeName:    stem,
			Start:       0,
			End:         nil,
			OutputPath:  filepath.Join(dir, stem+"."+container),
		}}
	}

	prefix := titlesCollide(chapters)

	segments := make([]Segment, 0, len(chapters))
	for i, c := range chapters {
		stem := SanitizeTitle(c.Title)
		if prefix {
			stem = fmt.Sprintf("%02d - %s", i+1, stem)
		}

		segments = append(segments, Segment{
			Index:       i + 1,
			SourceTitle: c.Title,
			SafeName:    stem,
			Start:       c.StartSeconds(),
			End:         c.End,
			OutputPath:  filepath.Join(dir, stem+"."+container),
		})
	}
	return segments
}

// titlesCollide reports whether any two chapters sanitize to the same
// case-folded stem. A single collision forces index prefixes onto the whole
// batch: all-or-nothing is simpler to reason about than prefixing only the
// colliding entries.
func titlesCollide(chapters []Chapter) bool {
	seen := make(map[string]struct{}, len(chapters))
	for _, c := range chapters {
		folded := strings.ToLower(SanitizeTitle(c.Title))
		if _, dup := seen[folded]; dup {
			return true
		}
		seen[folded] = struct{}{}
	}
	return false
}
