package stage

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugOut is where debug diagnostics go. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// globalDebug mirrors the most recently set Stage debug flag so that surfaces
// and font lookups (which lack a Stage pointer) can check it cheaply. Only
// valid with a single Stage; multiple Stages with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugf writes one prefixed diagnostic line.
func debugf(format string, args ...any) {
	_, _ = fmt.Fprintf(debugOut, "[stage] "+format+"\n", args...)
}

// debugStats holds per-frame timing for Stage.Draw.
// Only populated when Stage.debug is true.
type debugStats struct {
	drawTime   time.Duration
	actorCount int
	drawn      int
	hidden     int
}

// debugLog prints frame stats.
func (s *Stage) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	debugf("draw: %v | actors: %d | drawn: %d | hidden: %d",
		stats.drawTime, stats.actorCount, stats.drawn, stats.hidden)
}

// debugCheckRestore warns when a Restore has no matching Save.
func debugCheckRestore(depth int) {
	if depth == 0 {
		debugf("warning: restore without matching save")
	}
}
