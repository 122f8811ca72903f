// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Download Behavior - these keys govern where and how media is fetched from the remote source.
const (
	DownloadDir                 = "download.dir"
	DownloadConcurrentFragments = "download.concurrent_fragments"
)

// Output Format Defaults - these keys preselect the answers offered by the interactive prompts.
const (
	FormatVideoContainer = "format.video_container"
	FormatAudioContainer = "format.audio_container"
	FormatMaxHeight      = "format.max_height"
	FormatAudioBitrate   = "format.audio_bitrate"
)

// External Engine Binaries - these keys locate the fetch and transcode engines on the host system.
const (
	EngineYtdlpPath   = "engine.ytdlp_path"
	EngineFfmpegPath  = "engine.ffmpeg_path"
	EngineFfprobePath = "engine.ffprobe_path"
)

// History Tracking - these keys configure the persistence of completed run records.
const (
	HistorySaveOnRun = "history.save_on_run"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern general application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
