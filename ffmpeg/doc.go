// Package ffmpeg drives the external transcoding engine.
//
// It builds one argument list per planned segment, probes source stream
// codecs through ffprobe, and decides between stream copy and re-encode
// based on a fixed container compatibility table. The engine binaries are
// resolved from configuration and never reimplemented.
package ffmpeg
