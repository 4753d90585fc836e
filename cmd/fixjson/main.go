// Command fixjson reads and writes flat JSON objects and arrays with bounded buffers.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// config holds the flags shared by all commands.
type config struct {
	maxFields    int
	readBuffer   int
	escapeBuffer int
	arena        bool
	keyCase      string
	decompress   string
	jobs         int
	logLevel     string
}

// Defaults fit 50 fields and 16 KiB of input and unescaped strings.
func defaultConfig() config {
	return config{
		maxFields:    50,
		readBuffer:   16 << 10,
		escapeBuffer: 16 << 10,
		keyCase:      "none",
		decompress:   "none",
		jobs:         4,
		logLevel:     "info",
	}
}

func (c *config) register(app *kingpin.Application) {
	app.Flag("max-fields", "Maximum fields of an object or values of an array.").
		Default("50").Envar("FIXJSON_MAX_FIELDS").IntVar(&c.maxFields)
	app.Flag("read-buffer", "Size of the input buffer. A value must fit in it.").
		Default("16384").Envar("FIXJSON_READ_BUFFER").IntVar(&c.readBuffer)
	app.Flag("escape-buffer", "Size of the buffer unescaped strings are written to.").
		Default("16384").Envar("FIXJSON_ESCAPE_BUFFER").IntVar(&c.escapeBuffer)
	app.Flag("arena", "Intern strings in a growing arena instead of the escape buffer.").
		Envar("FIXJSON_ARENA").BoolVar(&c.arena)
	app.Flag("decompress", "Decompress input (none|gzip|zstd).").
		Default("none").Envar("FIXJSON_DECOMPRESS").EnumVar(&c.decompress, "none", "gzip", "zstd")
	app.Flag("log.level", "Only log messages with the given severity or above (debug|info|warn|error).").
		Default("info").Envar("FIXJSON_LOG_LEVEL").EnumVar(&c.logLevel, "debug", "info", "warn", "error")
}

func (c *config) validate() error {
	switch {
	case c.maxFields < 0:
		return errors.Errorf("invalid --max-fields %d", c.maxFields)
	case c.readBuffer <= 0:
		return errors.Errorf("invalid --read-buffer %d", c.readBuffer)
	case c.escapeBuffer < 0:
		return errors.Errorf("invalid --escape-buffer %d", c.escapeBuffer)
	case c.jobs <= 0:
		return errors.Errorf("invalid --jobs %d", c.jobs)
	}
	return nil
}

var logger = newLogger("info")

func newLogger(lvl string) log.Logger {
	l := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	var opt level.Option
	switch lvl {
	case "debug":
		opt = level.AllowDebug()
	case "warn":
		opt = level.AllowWarn()
	case "error":
		opt = level.AllowError()
	default:
		opt = level.AllowInfo()
	}
	l = level.NewFilter(l, opt)
	return log.With(l, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
}

func main() {
	cfg := defaultConfig()
	app := kingpin.New("fixjson", "Parse and write flat JSON objects and arrays with bounded memory.")
	app.HelpFlag.Short('h')
	cfg.register(app)
	app.PreAction(func(*kingpin.ParseContext) error {
		logger = newLogger(cfg.logLevel)
		return cfg.validate()
	})

	proxy := &proxyCommand{cfg: &cfg}
	proxy.register(app)
	check := &checkCommand{cfg: &cfg}
	check.register(app)
	fmtCmd := &fmtCommand{cfg: &cfg}
	fmtCmd.register(app)

	if _, err := app.Parse(os.Args[1:]); err != nil {
		level.Error(logger).Log("msg", "command failed", "err", err)
		os.Exit(1)
	}
}
