// Package fetch drives the external media-fetching engine (yt-dlp).
//
// It probes remote metadata without downloading, builds format selectors
// from the output policy, runs the download with terminal progress, and
// resolves the on-disk path of the fetched file through an ordered list of
// strategies. The engine itself is never reimplemented.
package fetch
