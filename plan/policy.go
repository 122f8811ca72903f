package plan

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// Mode selects between full audio+video output and audio-only output.
type Mode string

const (
	ModeVideo Mode = "video"
	ModeAudio Mode = "audio"
)

// ErrUnsupportedFormat reports a container or codec selection outside the
// fixed allow-lists. It is fatal: there is no partial acceptance.
var ErrUnsupportedFormat = errors.New("unsupported format/container selected")

// Fixed allow-lists of robust, common containers per mode.
var (
	VideoContainers = []string{"mp4", "mkv", "webm"}
	AudioContainers = []string{"mp3", "m4a", "flac", "wav", "opus"}
)

// Heights enumerates the selectable resolution ceilings, in pixels.
var Heights = []int{2160, 1440, 1080, 720, 480, 360}

// Bitrates enumerates the selectable audio bitrates, in kbps.
var Bitrates = []int{128, 160, 192, 256, 320}

// lossless marks audio containers whose codecs take no bitrate parameter.
var lossless = map[string]bool{
	"flac": true,
	"wav":  true,
}

// OutputPolicy captures the validated, immutable format choices for a run.
type OutputPolicy struct {
	Mode      Mode
	Container string

	// BitrateKbps is the target audio bitrate. Zero means unset; it is
	// ignored entirely for video mode and for lossless audio codecs.
	BitrateKbps int

	// MaxHeight is the resolution ceiling in pixels. Zero means unbounded
	// (use the highest available).
	MaxHeight int
}

// NewPolicy validates free-form user selections into an OutputPolicy.
func NewPolicy(mode Mode, container string, bitrateKbps, maxHeight int) (OutputPolicy, error) {
	switch mode {
	case ModeVideo:
		if !lo.Contains(VideoContainers, container) {
			return OutputPolicy{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, container)
		}
	case ModeAudio:
		if !lo.Contains(AudioContainers, container) {
			return OutputPolicy{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, container)
		}
	default:
		return OutputPolicy{}, fmt.Errorf("%w: mode %q", ErrUnsupportedFormat, mode)
	}

	if maxHeight < 0 {
		return OutputPolicy{}, fmt.Errorf("%w: resolution %d", ErrUnsupportedFormat, maxHeight)
	}

	if bitrateKbps < 0 {
		return OutputPolicy{}, fmt.Errorf("%w: bitrate %d", ErrUnsupportedFormat, bitrateKbps)
	}

	return OutputPolicy{
		Mode:        mode,
		Container:   container,
		BitrateKbps: bitrateKbps,
		MaxHeight:   maxHeight,
	}, nil
}

// Lossless reports whether the selected audio codec is lossless, in which
// case the bitrate parameter is dropped from the transcoding invocation.
func (p OutputPolicy) Lossless() bool {
	return lossless[p.Container]
}

// EffectiveBitrate returns the bitrate to pass to the transcode engine,
// or zero when the parameter must be omitted.
func (p OutputPolicy) EffectiveBitrate() int {
	if p.Mode != ModeAudio || p.Lossless() {
		return 0
	}
	return p.BitrateKbps
}
