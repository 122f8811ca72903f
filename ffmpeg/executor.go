package ffmpeg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/chapsplit-cli/chapsplit/key"
	"github.com/chapsplit-cli/chapsplit/log"
	"github.com/chapsplit-cli/chapsplit/plan"
	"github.com/spf13/viper"
)

// Engine invokes the external transcoding binary.
type Engine struct {
	bin string
}

// New returns an Engine bound to the configured ffmpeg binary.
func New() *Engine {
	return &Engine{bin: viper.GetString(key.EngineFfmpegPath)}
}

// Extract runs one extraction invocation for a planned segment, waiting for
// it to complete. Stderr is captured and folded into the returned error so
// a failed segment can be reported without aborting the batch. No segment
// is retried.
func (e *Engine) Extract(ctx context.Context, source string, seg plan.Segment, policy plan.OutputPolicy) error {
	args := BuildExtractArgs(source, seg, policy)
	log.Debugf("ffmpeg %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, e.bin, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("extract %q: %w: %s", seg.SafeName, err, detail)
		}
		return fmt.Errorf("extract %q: %w", seg.SafeName, err)
	}
	return nil
}
