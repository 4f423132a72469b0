package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger provides functionality for logging.
type Logger struct {
	*zerolog.Logger
}

func newFileWriter(filename string) io.Writer {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    10,
		MaxBackups: 3,
	}
}

var (
	logger Logger
	once   sync.Once
)

// Options represents options for logger.
type Options struct {
	LogLevel        string
	LogFile         string
	PrettyLogOutput bool
	// DisableConsole turns off the stdout writer, used when the terminal is owned by a UI.
	DisableConsole bool
}

// New returns a new instance of logger.
func New(opts Options) *Logger {
	once.Do(func() {
		var writers []io.Writer

		if !opts.DisableConsole {
			if opts.PrettyLogOutput {
				writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Stamp})
			} else {
				writers = append(writers, os.Stdout)
			}
		}

		if opts.LogFile != "" {
			writers = append(writers, newFileWriter(opts.LogFile))
		}

		if len(writers) == 0 {
			writers = append(writers, io.Discard)
		}

		if opts.LogLevel != "" {
			level, err := zerolog.ParseLevel(opts.LogLevel)
			if err != nil {
				panic(err)
			}

			zerolog.SetGlobalLevel(level)
		}

		multiWriters := io.MultiWriter(writers...)

		zeroLogger := zerolog.New(multiWriters).With().Caller().Timestamp().Logger()

		logger = Logger{&zeroLogger}
	})

	return &logger
}
