package lexgo

// Options controls one query evaluation.
type Options struct {
	// MatchThreshold is the fraction T in (0, 1] of the query's M
	// distinct terms a document must contain. The required minimum is
	// N = clamp(floor(T*M), 1, M): T = 1.0 degrades to AND retrieval,
	// a vanishing T to OR retrieval.
	MatchThreshold float64

	// HitCount caps the number of returned results. Must be positive.
	HitCount int
}

// DefaultOptions returns the default query options: a 0.5 match
// threshold and 10 hits.
func DefaultOptions() Options {
	return Options{
		MatchThreshold: 0.5,
		HitCount:       10,
	}
}

// validate surfaces out-of-range options immediately; they are never
// silently clamped.
func (o Options) validate() error {
	if o.MatchThreshold <= 0 || o.MatchThreshold > 1 {
		return &ErrInvalidMatchThreshold{Threshold: o.MatchThreshold}
	}
	if o.HitCount < 1 {
		return &ErrInvalidHitCount{HitCount: o.HitCount}
	}
	return nil
}

type engineOptions struct {
	logger *Logger
}

// EngineOption configures a SearchEngine.
type EngineOption func(*engineOptions)

// WithLogger configures the engine's logger. The default discards all
// output.
func WithLogger(logger *Logger) EngineOption {
	return func(o *engineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
