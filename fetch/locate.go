package fetch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/chapsplit-cli/chapsplit/filesystem"
	"github.com/chapsplit-cli/chapsplit/log"
	"github.com/chapsplit-cli/chapsplit/plan"
	"github.com/chapsplit-cli/chapsplit/util"
)

// Locate determines the on-disk path of a completed download. The engine's
// result record reports paths inconsistently across versions and
// post-processing steps, so strategies are tried in a fixed order:
//
//  1. explicit paths on the per-file download entries,
//  2. explicit path fields on the overall result record,
//  3. the engine's own filename prediction for the same URL and template,
//  4. a destination scan for files whose stem begins with the sanitized
//     video title, newest modification time winning.
//
// Only when every strategy fails does Locate return ErrSourceNotFound.
func (e *Engine) Locate(ctx context.Context, url string, meta *Metadata, res *Result, dir string) (string, error) {
	if res != nil {
		for _, d := range res.RequestedDownloads {
			for _, candidate := range []string{d.Filepath, d.Filename} {
				if path, ok := existing(candidate, dir); ok {
					return path, nil
				}
			}
		}

		for _, candidate := range []string{res.Filename, res.AltFilename} {
			if path, ok := existing(candidate, dir); ok {
				return path, nil
			}
		}
	}

	if path, ok := e.predictFilename(ctx, url, dir); ok {
		return path, nil
	}

	if path, ok := scanForTitle(meta.Title, dir); ok {
		return path, nil
	}

	return "", fmt.Errorf("%w: %q in %s", ErrSourceNotFound, meta.Title, dir)
}

// existing resolves a candidate path (absolute or relative to dir) and
// reports whether a file exists there.
func existing(candidate, dir string) (string, bool) {
	if candidate == "" {
		return "", false
	}
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(dir, filepath.Base(candidate))
	}
	if ok, err := filesystem.API().Exists(candidate); err == nil && ok {
		return candidate, true
	}
	return "", false
}

// predictFilename asks the engine what filename the output template
// resolves to for this URL, without downloading anything.
func (e *Engine) predictFilename(ctx context.Context, url, dir string) (string, bool) {
	cmd := exec.CommandContext(ctx, e.bin,
		"--no-playlist",
		"--skip-download",
		"--print", "filename",
		"-o", filepath.Join(dir, outputTemplate),
		url,
	)

	out, err := cmd.Output()
	if err != nil {
		log.Debugf("filename prediction failed: %s", err)
		return "", false
	}

	predicted := strings.TrimSpace(string(out))
	return existing(predicted, dir)
}

// scanForTitle walks the destination directory for files whose stem starts
// with the sanitized video title, preferring the most recently modified
// match. The engine applies its own title sanitization when writing files,
// so this is a prefix heuristic, not an exact match.
func scanForTitle(title, dir string) (string, bool) {
	prefix := plan.SanitizeTitle(title)

	infos, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return "", false
	}

	var best os.FileInfo
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if !strings.HasPrefix(util.FileStem(info.Name()), prefix) {
			continue
		}
		if best == nil || info.ModTime().After(best.ModTime()) {
			best = info
		}
	}

	if best == nil {
		return "", false
	}
	return filepath.Join(dir, best.Name()), true
}
