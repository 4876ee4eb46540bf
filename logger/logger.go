// Copyright (C) 2018. See AUTHORS.

// Package logger is a thin wrapper around a package level zerolog.Logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

// EmptyMessage is used for events logged without a message.
var EmptyMessage = ""

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	SetConsoleWriter(os.Stderr)
}

// Log returns the package logger.
func Log() *zerolog.Logger {
	return &log
}

// SetConsoleWriter logs human readable lines to w.
func SetConsoleWriter(w io.Writer) {
	log = zerolog.New(zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = w
		cw.FormatLevel = formatLevel
		cw.TimeFormat = "15:04:05.000"
	})).With().Timestamp().Logger()
}

// SetWriter logs json lines to w.
func SetWriter(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger()
}

// SetLevel parses and applies a level name such as "debug" or "warn".
func SetLevel(level string) error {
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

func formatLevel(i interface{}) string {
	ll, ok := i.(string)
	if !ok {
		return "???"
	}
	switch ll {
	case "trace":
		return "TRC"
	case "debug":
		return "DBG"
	case "info":
		return "INF"
	case "warn":
		return "WRN"
	case "error":
		return "ERR"
	case "fatal":
		return "FTL"
	case "panic":
		return "PNC"
	}
	return strings.ToUpper(ll)
}

// doLog adds alternating key/value args to event. A trailing key without a
// value becomes the message.
func doLog(event *zerolog.Event, args []interface{}) {
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			event.Interface(fmt.Sprintf("arg%d", i), args[i])
			i--
			continue
		}
		if i+1 == len(args) {
			event.Msg(key)
			return
		}
		switch v := args[i+1].(type) {
		case string:
			event.Str(key, v)
		case int:
			event.Int(key, v)
		case int64:
			event.Int64(key, v)
		case uint32:
			event.Uint32(key, v)
		case uint64:
			event.Uint64(key, v)
		case bool:
			event.Bool(key, v)
		case time.Duration:
			event.Str(key, v.String())
		case error:
			event.AnErr(key, v)
		case fmt.Stringer:
			event.Str(key, v.String())
		default:
			event.Interface(key, v)
		}
	}
	event.Msg(EmptyMessage)
}

// Debug logs at level Debug.
func Debug(args ...interface{}) {
	doLog(log.Debug(), args)
}

// Info logs at level Info.
func Info(args ...interface{}) {
	doLog(log.Info(), args)
}

// Warn logs at level Warn.
func Warn(args ...interface{}) {
	doLog(log.Warn(), args)
}

// Error logs err at level Error.
func Error(err error, args ...interface{}) {
	doLog(log.Error().Err(err), args)
}
