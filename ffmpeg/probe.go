package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"

	"github.com/chapsplit-cli/chapsplit/key"
	"github.com/spf13/viper"
)

// StreamInfo holds the codec names of a source file's primary video and
// audio streams, as reported by ffprobe. An empty codec means the file has
// no stream of that type.
type StreamInfo struct {
	VideoCodec string
	AudioCodec string
}

// ProbeStreams runs a single ffprobe JSON call against path and extracts
// the primary stream codecs, which feed the stream-copy compatibility
// check.
func ProbeStreams(ctx context.Context, path string) (StreamInfo, error) {
	bin := viper.GetString(key.EngineFfprobePath)
	cmd := exec.CommandContext(ctx, bin,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return StreamInfo{}, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	return ParseStreamsJSON(out)
}

// ParseStreamsJSON converts raw ffprobe JSON output into a StreamInfo.
// Exported for testing without a real ffprobe binary.
func ParseStreamsJSON(data []byte) (StreamInfo, error) {
	var raw struct {
		Streams []struct {
			CodecName   string         `json:"codec_name"`
			CodecType   string         `json:"codec_type"`
			Disposition map[string]int `json:"disposition"`
		} `json:"streams"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return StreamInfo{}, fmt.Errorf("parse ffprobe JSON: %w", err)
	}

	var info StreamInfo
	for _, s := range raw.Streams {
		switch s.CodecType {
		case "video":
			// Skip embedded cover art.
			if s.Disposition["attached_pic"] == 1 {
				continue
			}
			if info.VideoCodec == "" {
				info.VideoCodec = s.CodecName
			}
		case "audio":
			if info.AudioCodec == "" {
				info.AudioCodec = s.CodecName
			}
		}
	}
	return info, nil
}
