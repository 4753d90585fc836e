package main

import (
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

type readCloser struct {
	io.Reader
	closers []func() error
}

func (rc *readCloser) Close() error {
	var first error
	for i := len(rc.closers) - 1; i >= 0; i-- {
		if err := rc.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openInput opens name for reading. A name of "-" reads stdin.
func openInput(name, decompress string) (io.ReadCloser, error) {
	if name == "-" {
		return decompressReader(os.Stdin, decompress)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", name)
	}
	r, err := decompressReader(f, decompress)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "open %s", name)
	}
	rc := r.(*readCloser)
	rc.closers = append([]func() error{f.Close}, rc.closers...)
	return rc, nil
}

func decompressReader(r io.Reader, algo string) (io.ReadCloser, error) {
	switch algo {
	case "gzip":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "gzip")
		}
		return &readCloser{Reader: zr, closers: []func() error{zr.Close}}, nil
	case "zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, errors.Wrap(err, "zstd")
		}
		return &readCloser{Reader: zr, closers: []func() error{func() error {
			zr.Close()
			return nil
		}}}, nil
	case "none", "":
		return &readCloser{Reader: r}, nil
	default:
		return nil, errors.Errorf("unknown compression %q", algo)
	}
}
