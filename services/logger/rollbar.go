package logsvc

import (
	"io"
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
)

type RollbarLogger struct {
	std    *log.Logger
	report bool
}

var _ core.Logger = (*RollbarLogger)(nil)

// NewRollbarLogger reports to rollbar when a token is configured outside debug mode.
func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)
	l := &RollbarLogger{std: std}
	l.Enable(!conf.Debug && !conf.TestMode && conf.RollbarToken != "")
	return l
}

// NewNopLogger discards everything.
func NewNopLogger() *RollbarLogger {
	return &RollbarLogger{std: log.New(io.Discard, "", 0)}
}

func (l *RollbarLogger) Enable(enabled bool) {
	l.report = enabled
	rollbar.SetEnabled(enabled)
}

// expected fmt: msg | error, map[string]interface{}
func (l *RollbarLogger) prepare(msg string, args []interface{}) []interface{} {
	newArgs := make([]interface{}, 0, len(args)+2)
	newArgs = append(newArgs, msg)
	for _, arg := range args {
		newArgs = append(newArgs, arg)
		// batch failures carry their counts as extras
		if bErr, ok := arg.(*record.BatchError); ok {
			newArgs = append(newArgs, map[string]interface{}{
				"op":        bErr.Op,
				"table":     bErr.Table,
				"failed":    bErr.Failed,
				"succeeded": bErr.Succeeded,
			})
		}
	}
	return newArgs
}

func (l *RollbarLogger) print(msg string, args []interface{}) {
	l.std.Println(msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l *RollbarLogger) Debug(msg string, args ...interface{}) {
	if l.report {
		rollbar.Debug(l.prepare(msg, args)...)
	}
	l.print(msg, args)
}

func (l *RollbarLogger) Info(msg string, args ...interface{}) {
	if l.report {
		rollbar.Info(l.prepare(msg, args)...)
	}
	l.print(msg, args)
}

func (l *RollbarLogger) Warn(msg string, args ...interface{}) {
	if l.report {
		rollbar.Warning(l.prepare(msg, args)...)
	}
	l.print(msg, args)
}

func (l *RollbarLogger) Error(msg string, args ...interface{}) {
	if l.report {
		rollbar.Error(l.prepare(msg, args)...)
	}
	l.print(msg, args)
}

func (l *RollbarLogger) Fatal(msg string, args ...interface{}) {
	if l.report {
		rollbar.Critical(l.prepare(msg, args)...)
		rollbar.Wait()
	}
	l.print(msg, args)
	l.std.Fatal(msg)
}
