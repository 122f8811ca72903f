package ffmpeg

import "github.com/samber/lo"

// FallbackContainer is the universally-compatible container used when the
// source codecs cannot be stream-copied into the user's chosen one.
const FallbackContainer = "mkv"

// containerCodecs is the fixed compatibility table for stream copy: a
// container accepts a copied stream only when the source codec appears in
// its list. An empty entry accepts any codec.
var containerCodecs = map[string]struct {
	video []string
	audio []string
}{
	"mp4":  {video: []string{"h264", "hevc", "av1"}, audio: []string{"aac", "mp3", "alac"}},
	"webm": {video: []string{"vp8", "vp9", "av1"}, audio: []string{"opus", "vorbis"}},
	"mkv":  {},
}

// CopySupported reports whether the probed source codecs can be stream-
// copied into the target container without re-encoding. Unknown containers
// are never copy-safe.
func CopySupported(container, videoCodec, audioCodec string) bool {
	entry, known := containerCodecs[container]
	if !known {
		return false
	}
	if len(entry.video) == 0 && len(entry.audio) == 0 {
		return true
	}
	return lo.Contains(entry.video, videoCodec) && lo.Contains(entry.audio, audioCodec)
}

// audioEncoders maps an audio container to the engine's encoder name.
var audioEncoders = map[string]string{
	"mp3":  "libmp3lame",
	"m4a":  "aac",
	"flac": "flac",
	"wav":  "pcm_s16le",
	"opus": "libopus",
}

// AudioEncoder returns the engine codec name for an audio container.
// The container has already passed policy validation.
func AudioEncoder(container string) string {
	return audioEncoders[container]
}
