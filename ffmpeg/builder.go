package ffmpeg

import (
	"fmt"

	"github.com/chapsplit-cli/chapsplit/plan"
)

// BuildExtractArgs constructs the engine argument slice for one segment.
//
// The time window is applied as input options: -ss always (zero start is
// passed explicitly as 00:00:00.000), -to only when the segment has an end
// bound. A nil end means end-of-source and the flag is omitted rather than
// a duration guessed.
//
// Video mode copies all streams unmodified into the resolved container;
// audio mode drops video and re-encodes with the selected codec, passing
// -b:a only when the policy yields a bitrate (never for lossless codecs).
func BuildExtractArgs(source string, seg plan.Segment, policy plan.OutputPolicy) []string {
	args := make([]string, 0, 24)
	args = append(args, "-hide_banner", "-nostdin", "-y", "-loglevel", "error")

	args = append(args, "-ss", FormatTimestamp(seg.Start))
	if seg.End != nil {
		args = append(args, "-to", FormatTimestamp(*seg.End))
	}

	args = append(args, "-i", source)

	switch policy.Mode {
	case plan.ModeVideo:
		args = append(args,
			"-map", "0",
			"-c", "copy",
			"-avoid_negative_ts", "make_zero",
		)

	case plan.ModeAudio:
		args = append(args, "-vn", "-c:a", AudioEncoder(policy.Container))
		if kbps := policy.EffectiveBitrate(); kbps > 0 {
			args = append(args, "-b:a", fmt.Sprintf("%dk", kbps))
		}
	}

	args = append(args, seg.OutputPath)
	return args
}
