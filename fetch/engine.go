package fetch

import (
	"errors"

	"github.com/chapsplit-cli/chapsplit/key"
	"github.com/spf13/viper"
)

// Fatal error kinds surfaced by the fetch engine. Neither is retried.
var (
	ErrMetadataFetch  = errors.New("remote metadata lookup failed")
	ErrSourceNotFound = errors.New("downloaded source file could not be located")
)

// Engine invokes the external media-fetching binary.
type Engine struct {
	bin string
}

// New returns an Engine bound to the configured yt-dlp binary.
func New() *Engine {
	return &Engine{bin: viper.GetString(key.EngineYtdlpPath)}
}
