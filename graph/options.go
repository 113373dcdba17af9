package graph

import "log/slog"

// config holds construction-time settings for a Graph.
type config struct {
	logger *slog.Logger
}

// Option configures a Graph in New or NewFromSets. Options apply in order;
// the last one wins.
type Option func(*config)

// WithLogger routes debug traces of the algorithms (accepted MST edges,
// stale queue records, relaxations) to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("graph: WithLogger(nil)")
	}

	return func(c *config) {
		c.logger = l
	}
}

// defaultConfig discards all log output.
func defaultConfig() config {
	return config{logger: slog.New(slog.DiscardHandler)}
}
