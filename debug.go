package reed

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-step timing and contact metrics.
// Only populated when Simulation.debug is true.
type debugStats struct {
	componentTime   time.Duration
	integrateTime   time.Duration
	solveTime       time.Duration
	collideTime     time.Duration
	pointCount      int
	constraintCount int
	quadCount       int
	contactCount    int
}

// debugLog prints timing and contact stats to stderr.
func (s *Simulation) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	total := stats.componentTime + stats.integrateTime + stats.solveTime + stats.collideTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[reed] components: %v | integrate: %v | solve: %v | collide: %v | total: %v\n",
		stats.componentTime, stats.integrateTime, stats.solveTime, stats.collideTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[reed] points: %d | constraints: %d | quads: %d | contacts: %d\n",
		stats.pointCount, stats.constraintCount, stats.quadCount, stats.contactCount)
}
