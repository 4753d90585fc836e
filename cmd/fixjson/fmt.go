package main

import (
	"bufio"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/alxarch/fixjson"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// fmtCommand writes the values of the input back in compact form, one per line.
type fmtCommand struct {
	cfg   *config
	input string
}

func (cmd *fmtCommand) register(app *kingpin.Application) {
	c := app.Command("fmt", "Re-serialize flat JSON objects and arrays compactly.").Action(cmd.run)
	c.Flag("input", "Input file, - for stdin.").Short('i').Default("-").StringVar(&cmd.input)
}

func (cmd *fmtCommand) run(*kingpin.ParseContext) error {
	in, err := openInput(cmd.input, cmd.cfg.decompress)
	if err != nil {
		return err
	}
	defer in.Close()
	out := bufio.NewWriter(os.Stdout)
	n, err := format(in, out, cmd.cfg)
	if ferr := out.Flush(); err == nil && ferr != nil {
		err = errors.Wrap(ferr, "flush")
	}
	level.Info(logger).Log("msg", "fmt done", "values", n)
	return err
}

// format re-serializes every value of r to w. Objects and arrays may be mixed.
func format(r io.Reader, w io.Writer, cfg *config) (int, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), cfg.readBuffer)
	s.Split(fixjson.ScanJSON)
	var (
		obj    = fixjson.WrapObject(make([]fixjson.Field, cfg.maxFields))
		arr    = fixjson.WrapArray(make([]fixjson.Value, cfg.maxFields))
		escape = make([]byte, cfg.escapeBuffer)
		buf    []byte
		n      int
	)
	for ; s.Scan(); n++ {
		var err error
		data := s.Bytes()
		buf = buf[:0]
		if data[0] == '[' {
			if _, err = arr.Parse(data, escape); err == nil {
				buf, err = arr.AppendJSON(buf)
			}
		} else {
			if _, err = obj.Parse(data, escape); err == nil {
				buf, err = obj.AppendJSON(buf)
			}
		}
		if err != nil {
			return n, errors.Wrapf(err, "value %d", n)
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return n, errors.Wrapf(err, "write value %d", n)
		}
	}
	if err := s.Err(); err != nil {
		return n, errors.Wrapf(err, "value %d", n)
	}
	return n, nil
}
