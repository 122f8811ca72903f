package fetch

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/chapsplit-cli/chapsplit/key"
	"github.com/chapsplit-cli/chapsplit/log"
	"github.com/chapsplit-cli/chapsplit/plan"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/viper"
)

// outputTemplate names the downloaded file after the video title; the
// engine substitutes its own sanitized title and the real extension.
const outputTemplate = "%(title)s.%(ext)s"

// progressLine matches the engine's per-line progress reports.
var progressLine = regexp.MustCompile(`\[download\]\s+(\d+(?:\.\d+)?)%`)

// Download fetches the media for url into dir according to the policy and
// returns the engine's structured result record. Progress is rendered on
// the terminal as the engine reports it.
func (e *Engine) Download(ctx context.Context, url string, policy plan.OutputPolicy, dir string) (*Result, error) {
	args := []string{
		"--no-playlist",
		"--no-colors",
		"--newline",
		"--progress",
		"--print-json",
		"--concurrent-fragments", strconv.Itoa(viper.GetInt(key.DownloadConcurrentFragments)),
		"-o", filepath.Join(dir, outputTemplate),
		"-f", FormatSelector(policy),
	}

	if policy.Mode == plan.ModeVideo {
		args = append(args, "--merge-output-format", policy.Container)
	} else {
		args = append(args, "-x", "--audio-format", policy.Container)
		if kbps := policy.EffectiveBitrate(); kbps > 0 {
			args = append(args, "--audio-quality", fmt.Sprintf("%dK", kbps))
		}
	}

	args = append(args, url)
	log.Debugf("yt-dlp %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, e.bin, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start download: %w", err)
	}

	result, scanErr := consumeOutput(stdout)

	if err := cmd.Wait(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("download failed: %w: %s", err, detail)
		}
		return nil, fmt.Errorf("download failed: %w", err)
	}
	if scanErr != nil {
		return nil, scanErr
	}

	return result, nil
}

// consumeOutput reads the engine's stdout line by line, feeding progress
// reports into a terminal bar and decoding the final JSON result record.
func consumeOutput(r interface{ Read([]byte) (int, error) }) (*Result, error) {
	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("downloading"),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(30),
	)

	var result *Result

	scanner := bufio.NewScanner(r)
	// The result record is a single JSON line that can be large.
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "{") {
			var decoded Result
			if err := json.Unmarshal([]byte(line), &decoded); err == nil {
				result = &decoded
			}
			continue
		}

		if m := progressLine.FindStringSubmatch(line); m != nil {
			if pct, err := strconv.ParseFloat(m[1], 64); err == nil {
				_ = bar.Set(int(pct))
			}
		}
	}
	_ = bar.Finish()

	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("read download output: %w", err)
	}
	return result, nil
}
