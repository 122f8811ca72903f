package fetch

import "github.com/chapsplit-cli/chapsplit/plan"

// Metadata is the engine's structured description of a remote video,
// obtained without downloading any media. Chapters keep the order reported
// by the source; an absent or empty list means the source declares none.
type Metadata struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Duration   float64        `json:"duration"`
	Ext        string         `json:"ext"`
	VideoCodec string         `json:"vcodec"`
	AudioCodec string         `json:"acodec"`
	Chapters   []plan.Chapter `json:"chapters"`
}

// HasChapters reports whether the source declares any chapters.
func (m *Metadata) HasChapters() bool {
	return len(m.Chapters) > 0
}

// Result is the engine's loosely-typed record printed after a completed
// download. Only the fields relevant to locating the produced file are
// decoded; everything else is ignored.
type Result struct {
	Filename    string `json:"filename"`
	AltFilename string `json:"_filename"`

	RequestedDownloads []struct {
		Filepath string `json:"filepath"`
		Filename string `json:"filename"`
	} `json:"requested_downloads"`
}
