package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// InferenceStats holds the profiling results of the last Predict
// call: total wall time, per-layer wall times, and an approximate
// memory-usage estimate. Stats are reset at the start of every
// profiled Predict and are read-only afterward.
type InferenceStats struct {
	TotalTime        time.Duration
	LayerTimes       []time.Duration
	MemoryUsageBytes uint64
}

// String formats the stats for human consumption.
func (s InferenceStats) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "total: %v, memory: ~%s", s.TotalTime, humanize.Bytes(s.MemoryUsageBytes))
	for i, lt := range s.LayerTimes {
		fmt.Fprintf(&b, "\n  layer %d: %v", i, lt)
	}
	return b.String()
}
