package main

import (
	"bufio"
	"io"
	"sync"

	"github.com/alecthomas/kingpin/v2"
	"github.com/alxarch/fixjson"
	"github.com/go-kit/log/level"
	"github.com/panjf2000/ants/v2"
	"github.com/pkg/errors"
)

// checkCommand validates files of flat JSON values concurrently.
type checkCommand struct {
	cfg   *config
	files []string
}

func (cmd *checkCommand) register(app *kingpin.Application) {
	c := app.Command("check", "Validate files containing flat JSON objects or arrays.").Action(cmd.run)
	c.Flag("jobs", "Number of files checked concurrently.").
		Short('j').Default("4").Envar("FIXJSON_JOBS").IntVar(&cmd.cfg.jobs)
	c.Arg("files", "Files to check.").Required().ExistingFilesVar(&cmd.files)
}

type checkResult struct {
	file   string
	values int
	err    error
}

func (cmd *checkCommand) run(*kingpin.ParseContext) error {
	results, err := checkFiles(cmd.files, cmd.cfg)
	if err != nil {
		return err
	}
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			level.Error(logger).Log("msg", "invalid file", "file", r.file, "values", r.values, "err", r.err)
			continue
		}
		level.Info(logger).Log("msg", "valid file", "file", r.file, "values", r.values)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

// checkFiles checks files on a pool of cfg.jobs workers.
// Results are in the order of files.
func checkFiles(files []string, cfg *config) ([]checkResult, error) {
	pool, err := ants.NewPool(cfg.jobs)
	if err != nil {
		return nil, errors.Wrap(err, "worker pool")
	}
	defer pool.Release()

	results := make([]checkResult, len(files))
	var wg sync.WaitGroup
	for i, file := range files {
		i, file := i, file
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			results[i] = checkFile(file, cfg)
		})
		if err != nil {
			wg.Done()
			results[i] = checkResult{file: file, err: errors.Wrap(err, "submit")}
		}
	}
	wg.Wait()
	return results, nil
}

func checkFile(file string, cfg *config) checkResult {
	in, err := openInput(file, cfg.decompress)
	if err != nil {
		return checkResult{file: file, err: err}
	}
	defer in.Close()
	n, err := checkStream(in, cfg)
	return checkResult{file: file, values: n, err: err}
}

// checkStream counts the flat values in r and fails on the first invalid one.
func checkStream(r io.Reader, cfg *config) (int, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), cfg.readBuffer)
	s.Split(fixjson.ScanJSON)
	n := 0
	for s.Scan() {
		_, count, err := fixjson.Validate(s.Bytes())
		if err != nil {
			return n, errors.Wrapf(err, "value %d", n)
		}
		if count > cfg.maxFields {
			return n, errors.Wrapf(fixjson.FieldBufferTooSmall, "value %d has %d entries", n, count)
		}
		n++
	}
	if err := s.Err(); err != nil {
		return n, errors.Wrapf(err, "value %d", n)
	}
	return n, nil
}
