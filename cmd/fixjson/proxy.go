package main

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"github.com/alxarch/fixjson"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

// proxyCommand copies a stream of objects from the input to stdout, one per line.
type proxyCommand struct {
	cfg   *config
	input string
}

func (cmd *proxyCommand) register(app *kingpin.Application) {
	c := app.Command("proxy", "Parse objects from the input and write them to stdout.").Action(cmd.run)
	c.Flag("input", "Input file, - for stdin.").Short('i').Default("-").StringVar(&cmd.input)
	c.Flag("case", "Rewrite keys (none|snake|lower|camel|Camel).").
		Default("none").Envar("FIXJSON_CASE").EnumVar(&cmd.cfg.keyCase, "none", "snake", "lower", "camel", "Camel")
}

func (cmd *proxyCommand) run(*kingpin.ParseContext) error {
	in, err := openInput(cmd.input, cmd.cfg.decompress)
	if err != nil {
		return err
	}
	defer in.Close()
	out := bufio.NewWriter(os.Stdout)
	n, err := proxy(in, out, cmd.cfg, logger)
	if ferr := out.Flush(); err == nil && ferr != nil {
		err = errors.Wrap(ferr, "flush")
	}
	level.Info(logger).Log("msg", "proxy done", "objects", n)
	return err
}

// proxy reads objects from r until EOF and writes each one to w followed by a newline.
// It returns the number of objects written.
func proxy(r io.Reader, w io.Writer, cfg *config, logger log.Logger) (int, error) {
	rd := fixjson.NewReader(r, make([]byte, cfg.readBuffer))
	obj := fixjson.WrapObject(make([]fixjson.Field, cfg.maxFields))
	escape := make([]byte, cfg.escapeBuffer)
	keys := newKeyRewriter(cfg.keyCase)
	enc := fixjson.NewEncoder(w)
	var arena *fixjson.Arena
	if cfg.arena {
		arena = fixjson.NewArena(cfg.escapeBuffer)
	}
	for count := 0; ; count++ {
		var err error
		if arena != nil {
			err = rd.ReadObjectArena(&obj, arena)
		} else {
			err = rd.ReadObject(&obj, escape)
		}
		switch {
		case err == io.EOF:
			return count, nil
		case err != nil:
			return count, errors.Wrapf(err, "read object %d", count)
		}
		level.Debug(logger).Log("msg", "parsed object", "index", count, "fields", obj.Len(), "buffered", len(rd.Buffered()))
		keys.rewrite(obj.Fields())
		if err := enc.EncodeObject(obj); err != nil {
			return count, errors.Wrapf(err, "write object %d", count)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return count, errors.Wrapf(err, "write object %d", count)
		}
	}
}

// keyRewriter changes the case of object keys.
//
// Parsed keys alias the escape buffer which is reused for every object so
// rewritten keys are interned in an arena, once per distinct key.
type keyRewriter struct {
	transform func(string) string
	arena     *fixjson.Arena
	keys      map[string]string
}

func newKeyRewriter(mode string) *keyRewriter {
	var transform func(string) string
	switch mode {
	case "snake":
		transform = strcase.ToSnake
	case "lower":
		transform = strings.ToLower
	case "camel":
		transform = strcase.ToLowerCamel
	case "Camel":
		transform = strcase.ToCamel
	default:
		return &keyRewriter{}
	}
	return &keyRewriter{
		transform: transform,
		arena:     fixjson.NewArena(0),
		keys:      make(map[string]string),
	}
}

func (k *keyRewriter) rewrite(fields []fixjson.Field) {
	if k.transform == nil {
		return
	}
	for i := range fields {
		f := &fields[i]
		key, ok := k.keys[f.Key]
		if !ok {
			key = k.arena.Push(k.transform(f.Key))
			k.keys[k.arena.Push(f.Key)] = key
		}
		f.Key = key
	}
}
