package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/chapsplit-cli/chapsplit/internal/cache"
	"github.com/chapsplit-cli/chapsplit/log"
)

// Probe queries the engine for a video's metadata and chapter list without
// downloading any media. Results are cached per URL so re-runs of the same
// source skip the network round trip.
func (e *Engine) Probe(ctx context.Context, url string) (*Metadata, error) {
	cacheKey := cache.GenerateKey(url)

	var cached Metadata
	if cache.Read(cacheKey, &cached) {
		log.Debugf("metadata cache hit for %s", url)
		return &cached, nil
	}

	cmd := exec.CommandContext(ctx, e.bin, "-J", "--no-playlist", url)

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", ErrMetadataFetch, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("%w: %s", ErrMetadataFetch, err)
	}

	var meta Metadata
	if err := json.Unmarshal(out, &meta); err != nil {
		return nil, fmt.Errorf("%w: decode metadata: %s", ErrMetadataFetch, err)
	}

	if err := cache.Write(cacheKey, &meta); err != nil {
		log.Warnf("cache metadata: %s", err)
	}

	return &meta, nil
}
