package main

const defaultWorkers = 8

type Config struct {
	// Number of goroutines racing to request shutdown.
	Workers int
	Verbose bool
}

func DefaultConfig() Config {
	return Config{
		Workers: defaultWorkers,
	}
}

func sanitizeConfig(cfg Config) Config {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg
}
