// Package plan turns chapter metadata and user format choices into an
// executable per-segment extraction plan.
//
// It owns the chapter data model, the output format policy and its
// validation, chapter title sanitization, and the batch-wide filename
// collision rule. Planning is pure: no filesystem or process access.
package plan
