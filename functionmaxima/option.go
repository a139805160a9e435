package functionmaxima

import "github.com/sgostarter/i/l"

const defaultSeed = 0x5eed

type Config struct {
	// Seed feeds the priorities of both internal trees; equal seeds give equal shapes.
	Seed int64 `yaml:"seed" json:"seed"`
	// DebugRollback logs every rolled back mutation at debug level.
	DebugRollback bool `yaml:"debug_rollback" json:"debug_rollback"`
}

type Options struct {
	logger l.Wrapper
	cfg    Config
}

type Option func(o *Options)

func optionNew(option ...Option) *Options {
	opts := &Options{
		cfg: Config{
			Seed: defaultSeed,
		},
	}

	for _, o := range option {
		o(opts)
	}

	if opts.logger == nil {
		opts.logger = l.NewNopLoggerWrapper()
	}

	return opts
}

func WithLogger(logger l.Wrapper) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.cfg.Seed = seed
	}
}

func WithConfig(cfg Config) Option {
	return func(o *Options) {
		o.cfg = cfg
	}
}
