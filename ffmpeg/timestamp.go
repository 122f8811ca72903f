package ffmpeg

import (
	"fmt"
	"math"
)

// FormatTimestamp converts seconds to the HH:MM:SS.mmm form used for the
// engine's -ss and -to parameters. The value is rounded to whole
// milliseconds before being decomposed, so a fraction close to a minute
// boundary carries into the next unit instead of rendering an invalid
// seconds field like "00:00:60.000".
//
// Example:
//
//	FormatTimestamp(0)       // "00:00:00.000"
//	FormatTimestamp(90)      // "00:01:30.000"
//	FormatTimestamp(3661.25) // "01:01:01.250"
func FormatTimestamp(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}

	millis := int64(math.Round(seconds * 1000))
	hours := millis / 3_600_000
	minutes := (millis % 3_600_000) / 60_000
	secs := (millis % 60_000) / 1000
	frac := millis % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, secs, frac)
}
