// Package main is the psbt-decode command: it prints the records of a PSBT or PSET.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goodnatureofminers/psbt-decoder/internal/dump"
	"github.com/goodnatureofminers/psbt-decoder/internal/metrics"
	"github.com/goodnatureofminers/psbt-decoder/internal/payload"
	"github.com/goodnatureofminers/psbt-decoder/internal/psbt"
	"github.com/goodnatureofminers/psbt-decoder/internal/typetable"
)

const (
	envLogLevel    = "PSBT_DECODE_LOG_LEVEL"
	envMetricsFile = "PSBT_DECODE_METRICS_FILE"
)

type config struct {
	Hex       bool   `long:"hex" description:"psbt is in hex, not base64"`
	PSBTTypes string `long:"psbt-types" env:"PSBT_DECODE_TYPES" description:"JSON or YAML file that contains all of the types in the PSBT"`
	PSET      bool   `long:"pset" description:"the PSBT is actually for Elements, it's a PSET"`
	Args      struct {
		PSBT string `positional-arg-name:"psbt" description:"psbt to decode"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	cfg := config{}

	logger, err := newLogger(os.Getenv(envLogLevel))
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	runErr := run(cfg, logger, os.Stdout)
	if path := os.Getenv(envMetricsFile); path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			logger.Error("failed to write metrics", zap.String("path", path), zap.Error(err))
		}
	}
	if runErr != nil {
		logger.Fatal("psbt decode failed", zap.Error(runErr))
	}
}

// newLogger builds the development logger on stderr; stdout is reserved for the dump.
func newLogger(level string) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", envLogLevel, err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	return zcfg.Build()
}

func run(cfg config, logger *zap.Logger, out io.Writer) error {
	format := payload.FormatBase64
	if cfg.Hex {
		format = payload.FormatHex
	}
	raw, err := payload.Decode(cfg.Args.PSBT, format)
	if err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	flavour := psbt.MagicPSBT
	if cfg.PSET {
		flavour = psbt.MagicPSET
	}
	table, err := typetable.Load(cfg.PSBTTypes, cfg.PSET)
	if err != nil {
		return fmt.Errorf("load type table: %w", err)
	}
	logger = logger.With(zap.String("flavour", flavour))
	logger.Debug("type table loaded",
		zap.String("path", cfg.PSBTTypes),
		zap.Strings("input_prefixes", table.Prefixes(psbt.ScopeInput)),
		zap.Strings("output_prefixes", table.Prefixes(psbt.ScopeOutput)),
	)

	decoder := psbt.NewDecoder(table, metrics.NewDecoder(flavour), logger)
	env, err := decoder.Decode(raw)
	if err != nil {
		return fmt.Errorf("decode %s: %w", flavour, err)
	}
	if env.Format() != flavour {
		logger.Info("magic does not match the selected flavour", zap.String("magic", env.Format()))
	}
	return dump.Write(out, env)
}
