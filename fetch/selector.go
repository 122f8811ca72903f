package fetch

import (
	"fmt"

	"github.com/chapsplit-cli/chapsplit/plan"
)

// FormatSelector composes the engine format expression for a policy.
//
// Video prefers the best stream pair up to the resolution ceiling, falling
// back gracefully; audio always takes the best available audio stream and
// leaves conversion to the transcode step.
func FormatSelector(policy plan.OutputPolicy) string {
	if policy.Mode == plan.ModeAudio {
		return "bestaudio/best"
	}

	if policy.MaxHeight == 0 {
		return "bv*+ba/best"
	}

	return fmt.Sprintf(
		"bv*[height<=%d]+ba/best[height<=%d]/best",
		policy.MaxHeight, policy.MaxHeight,
	)
}
