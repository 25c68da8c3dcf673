package engine

import "pursuit/metrics"

const MaxMoves = 500

// Timeout is the outcome of a game stopped by the move cap.
const Timeout = "timeout"

type Engine interface {
	// Run plays a game till it is won or lost or the move cap is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
