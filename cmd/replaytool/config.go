package main

import (
	"fmt"
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"

	marblereplay "github.com/raniellyferreira/marble-replay"
	"github.com/raniellyferreira/marble-replay/metrics"
	"github.com/raniellyferreira/marble-replay/protocol"
)

// Config is the tool's configuration. Environment variables set the
// defaults; command-line flags override them.
type Config struct {
	Workers        int    `env:"MARBLE_REPLAY_WORKERS" envDefault:"0"`
	MaxInflated    int64  `env:"MARBLE_REPLAY_MAX_INFLATED" envDefault:"0"`
	LogLevel       string `env:"MARBLE_REPLAY_LOG_LEVEL" envDefault:"warn"`
	StringEncoding string `env:"MARBLE_REPLAY_STRING_ENCODING" envDefault:"fixed32"`
	MetricsFile    string `env:"MARBLE_REPLAY_METRICS_FILE"`
	FailFast       bool   `env:"MARBLE_REPLAY_FAIL_FAST"`
}

// loadConfig reads the configuration from the environment
func loadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// setup builds the decoder and logger from a.cfg. The collector stays nil
// unless a metrics file is configured.
func (a *app) setup(logOut io.Writer) error {
	cfg := a.cfg
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	enc, err := protocol.ParseStringEncoding(cfg.StringEncoding)
	if err != nil {
		return err
	}

	l := logrus.New()
	l.SetOutput(logOut)
	l.SetLevel(level)
	a.logger = marblereplay.NewLogrusLogger(l)
	a.encoding = enc

	opts := []marblereplay.Option{
		marblereplay.WithLogger(a.logger),
		marblereplay.WithMaxInflatedSize(cfg.MaxInflated),
		marblereplay.WithStringEncoding(enc),
	}

	var collector *metrics.Collector
	if cfg.MetricsFile != "" {
		collector = metrics.New()
		opts = append(opts, marblereplay.WithMetrics(collector))
	}

	dec, err := marblereplay.New(opts...)
	if err != nil {
		return err
	}
	a.decoder = dec
	a.collector = collector
	return nil
}
