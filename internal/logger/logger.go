// Package logger writes the editor's diagnostics to a file. Output never goes
// to the terminal, since that is the surface being painted.
package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	L    *zap.Logger
	S    *zap.SugaredLogger
	sink *os.File
)

// Init opens the log file and installs the package logger. An empty path
// resolves through $MRCAT_LOG_FILE and then the config directory.
// The file is truncated on each run.
func Init(path string, debug bool) error {
	if path == "" {
		var err error
		if path, err = defaultPath(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	sink = f
	L = New(zapcore.AddSync(f), debug)
	S = L.Sugar()
	S.Infow("logger initialized", "path", path, "debug", debug)
	return nil
}

// New builds a console-encoded logger on ws. Callers are reported one frame
// up so the package helpers point at their call site.
func New(ws zapcore.WriteSyncer, debug bool) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = "ts"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.FunctionKey = zapcore.OmitKey

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), ws, level)
	return zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
}

// Close syncs and releases the log file. Helpers are no-ops afterwards.
func Close() {
	if L != nil {
		_ = L.Sync()
	}
	if sink != nil {
		_ = sink.Close()
		sink = nil
	}
	L, S = nil, nil
}

func defaultPath() (string, error) {
	if v := os.Getenv("MRCAT_LOG_FILE"); v != "" {
		return v, nil
	}
	if v := os.Getenv("MRCAT_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "mrcat.log"), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "mrcat", "mrcat.log"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mrcat", "mrcat.log"), nil
}

func Debug(msg string, keysAndValues ...any) {
	if S != nil {
		S.Debugw(msg, keysAndValues...)
	}
}

func Info(msg string, keysAndValues ...any) {
	if S != nil {
		S.Infow(msg, keysAndValues...)
	}
}

func Warn(msg string, keysAndValues ...any) {
	if S != nil {
		S.Warnw(msg, keysAndValues...)
	}
}

func Error(msg string, keysAndValues ...any) {
	if S != nil {
		S.Errorw(msg, keysAndValues...)
	}
}
