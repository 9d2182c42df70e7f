package walker

import (
	"fmt"

	"go.uber.org/atomic"
)

// Summary of one run
type Summary struct {
	Found     int `json:"found"`
	Processed int `json:"processed"`
	Errors    int `json:"errors"`
	Failed    int `json:"failed"` // conversion failures, part of Errors
}

func (s Summary) String() string {
	return fmt.Sprintf("found %d, processed %d, errors %d", s.Found, s.Processed, s.Errors)
}

// Report logs a summary of a run
func (w *Walker) Report(s Summary) {
	logger().Infow("run summary", "size", w.opts.Size.String(), "suffix", w.opts.Suffix,
		"found", s.Found, "processed", s.Processed, "errors", s.Errors, "failed", s.Failed)
}

// counters live for one run, atomic so conversions may run in parallel
type counters struct {
	found     atomic.Int64
	processed atomic.Int64
	errors    atomic.Int64
	failed    atomic.Int64
}

func (c *counters) reset() {
	c.found.Store(0)
	c.processed.Store(0)
	c.errors.Store(0)
	c.failed.Store(0)
}

func (c *counters) summary() Summary {
	return Summary{
		Found:     int(c.found.Load()),
		Processed: int(c.processed.Load()),
		Errors:    int(c.errors.Load()),
		Failed:    int(c.failed.Load()),
	}
}

// Reporter receives progress of a run, paths are relative to the root.
// Converted and Failed may be called concurrently when Workers > 1.
type Reporter interface {
	Start(root string, opts Options)
	Converted(rel, relOut string)
	Failed(rel string, err error)
	AccessFailed(fpath string, err error)
	Done(root string, s Summary)
}

type logReporter struct{}

func (logReporter) Start(root string, opts Options) {
	logger().Infow("walk start", "root", root, "size", opts.Size.String(), "suffix", opts.Suffix)
}

func (logReporter) Converted(rel, relOut string) {
	logger().Infow("converted", "src", rel, "dst", relOut)
}

func (logReporter) Failed(rel string, err error) {
	logger().Warnw("convert fail", "src", rel, "err", err)
}

func (logReporter) AccessFailed(fpath string, err error) {
	logger().Warnw("access fail", "path", fpath, "err", err)
}

func (logReporter) Done(root string, s Summary) {
	logger().Infow("walk done", "root", root, "found", s.Found, "processed", s.Processed, "errors", s.Errors)
}
