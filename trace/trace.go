package trace

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sink receives leveled progress and diagnostic messages from a single solver
// call. Message text is free-form; the observable contract is which level
// fires at which checkpoint (start, per-record decision, completion, summary).
//
// *zap.SugaredLogger satisfies Sink as-is, which is what every constructor in
// this package returns.
type Sink interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// encoderConfig returns the shared encoder layout: ISO8601 timestamp,
// capitalized level, plain message.
func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	return cfg
}

// threshold maps the verbose switch to the minimum emitted level.
func threshold(verbose bool) zapcore.LevelEnabler {
	if verbose {
		return zapcore.DebugLevel
	}

	return zapcore.InfoLevel
}

// consoleCore builds a core writing to stdout.
func consoleCore(verbose bool) zapcore.Core {
	enc := zapcore.NewConsoleEncoder(encoderConfig())

	return zapcore.NewCore(enc, zapcore.Lock(os.Stdout), threshold(verbose))
}

// fileCore builds a core appending to path, truncating any previous run.
func fileCore(path string, verbose bool) (zapcore.Core, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	enc := zapcore.NewConsoleEncoder(encoderConfig())

	return zapcore.NewCore(enc, zapcore.Lock(f), threshold(verbose)), nil
}

// NewConsole returns a Sink that writes timestamped lines to stdout.
// Debug lines are emitted only when verbose is true.
func NewConsole(verbose bool) Sink {
	return zap.New(consoleCore(verbose)).Sugar()
}

// NewFile returns a Sink that writes timestamped lines to the file at path,
// truncating it first. The file handle lives as long as the process; callers
// that need flushing on exit should go through NewDual/NewFile once at startup.
func NewFile(path string, verbose bool) (Sink, error) {
	core, err := fileCore(path, verbose)
	if err != nil {
		return nil, err
	}

	return zap.New(core).Sugar(), nil
}

// NewDual returns a Sink that feeds both the console and the file at path
// from a single tee, mirroring every record to both outputs.
func NewDual(path string, verbose bool) (Sink, error) {
	fc, err := fileCore(path, verbose)
	if err != nil {
		return nil, err
	}
	tee := zapcore.NewTee(consoleCore(verbose), fc)

	return zap.New(tee).Sugar(), nil
}

// Nop returns a Sink that discards all messages. Solvers substitute it for a
// nil sink so call sites never need nil checks.
func Nop() Sink {
	return zap.NewNop().Sugar()
}

// OrNop normalizes a possibly-nil sink.
func OrNop(s Sink) Sink {
	if s == nil {
		return Nop()
	}

	return s
}
