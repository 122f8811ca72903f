// Package pipeline orchestrates a full run: probe the source metadata,
// download the media, locate the downloaded file and extract one output
// file per chapter.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/chapsplit-cli/chapsplit/color"
	"github.com/chapsplit-cli/chapsplit/fetch"
	"github.com/chapsplit-cli/chapsplit/ffmpeg"
	"github.com/chapsplit-cli/chapsplit/history"
	"github.com/chapsplit-cli/chapsplit/icon"
	"github.com/chapsplit-cli/chapsplit/key"
	"github.com/chapsplit-cli/chapsplit/log"
	"github.com/chapsplit-cli/chapsplit/plan"
	"github.com/chapsplit-cli/chapsplit/prompt"
	"github.com/chapsplit-cli/chapsplit/style"
	"github.com/chapsplit-cli/chapsplit/util"
	"github.com/spf13/viper"
)

// SegmentResult records the outcome of a single extraction.
type SegmentResult struct {
	Segment plan.Segment
	Err     error
}

// Report summarizes a completed run.
type Report struct {
	Title    string
	Dir      string
	Segments []SegmentResult
	Failed   int
}

// Run executes the whole pipeline for a validated session. It returns an
// error only when no output could be produced at all; individual segment
// failures are collected in the report instead.
func Run(ctx context.Context, session *prompt.Session) (*Report, error) {
	engine := fetch.New()

	erase := util.PrintErasable(fmt.Sprintf("%s Fetching video metadata...", icon.Get(icon.Progress)))
	meta, err := engine.Probe(ctx, session.URL)
	erase()
	if err != nil {
		return nil, err
	}

	log.Infof("probed %q: %d chapters", meta.Title, len(meta.Chapters))
	if !meta.HasChapters() {
		fmt.Printf("%s No chapters found, the whole video will be saved as a single file\n", icon.Get(icon.Warn))
	}

	fmt.Printf("%s Downloading %s\n", icon.Get(icon.Download), style.Bold(meta.Title))
	result, err := engine.Download(ctx, session.URL, session.Policy, session.Dir)
	if err != nil {
		return nil, err
	}

	source, err := engine.Locate(ctx, session.URL, meta, result, session.Dir)
	if err != nil {
		return nil, err
	}
	log.Infof("located downloaded file at %q", source)

	container := resolveContainer(ctx, source, session.Policy)
	segments := plan.Build(meta.Title, meta.Chapters, container, session.Dir)

	report := &Report{Title: meta.Title, Dir: session.Dir}
	splitter := ffmpeg.New()
	for _, seg := range segments {
		fmt.Printf("%s %s\n", icon.Get(icon.Split), progressLabel(seg, len(segments)))

		var err error
		if keepInPlace(seg, source) {
			log.Infof("download already produced %q, no extraction needed", seg.OutputPath)
		} else {
			err = splitter.Extract(ctx, source, seg, session.Policy)
		}
		if err != nil {
			log.Errorf("segment %q: %v", seg.SafeName, err)
			fmt.Printf("%s %s\n", icon.Get(icon.Fail), style.Fg(color.Red)(err.Error()))
			report.Failed++
		}
		report.Segments = append(report.Segments, SegmentResult{Segment: seg, Err: err})

		if ctx.Err() != nil {
			return report, ctx.Err()
		}
	}

	if viper.GetBool(key.HistorySaveOnRun) {
		saveErr := history.Save(&history.SavedRun{
			URL:        session.URL,
			Title:      meta.Title,
			Mode:       session.Policy.Mode,
			Container:  container,
			Segments:   len(segments),
			Failed:     report.Failed,
			OutputDir:  session.Dir,
			FinishedAt: time.Now(),
		})
		if saveErr != nil {
			log.Errorf("save history: %v", saveErr)
		}
	}

	return report, nil
}

// progressLabel renders the per-segment counter line. Segment indexes are
// 1-based already.
func progressLabel(seg plan.Segment, total int) string {
	return fmt.Sprintf("[%d/%d] %s", seg.Index, total, seg.SafeName)
}

// keepInPlace reports whether a segment needs no extraction at all: a
// chapterless source plans one whole-file segment, and when its output path
// is exactly where the download landed the file already is the result.
// Invoking the extractor there would fail, since it refuses an output equal
// to its input.
func keepInPlace(seg plan.Segment, source string) bool {
	return seg.OutputPath == source && seg.Start == 0 && seg.End == nil
}

// resolveContainer decides the actual output container for a video run.
// If the source streams cannot be copied into the selected container the
// fallback container is used, so segments stay lossless stream copies.
func resolveContainer(ctx context.Context, source string, policy plan.OutputPolicy) string {
	if policy.Mode == plan.ModeAudio {
		return policy.Container
	}

	info, err := ffmpeg.ProbeStreams(ctx, source)
	if err != nil {
		log.Errorf("probe streams of %q: %v", source, err)
		return policy.Container
	}

	if ffmpeg.CopySupported(policy.Container, info.VideoCodec, info.AudioCodec) {
		return policy.Container
	}

	fmt.Printf(
		"%s Codecs %s/%s cannot be copied into %s, writing %s instead\n",
		icon.Get(icon.Warn),
		info.VideoCodec,
		info.AudioCodec,
		policy.Container,
		ffmpeg.FallbackContainer,
	)
	return ffmpeg.FallbackContainer
}
