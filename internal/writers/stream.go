package writers

import (
	"bufio"
	"errors"
	"io"
	"sync"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader went away, as when
// output is piped into `head`.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

// Reuse a 64 KiB buffered writer across streams to avoid per-writer mallocs.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// start spins up a writer goroutine for values of type T. write is called
// once per value with a pooled buffered writer bound to out. After a failed
// write the rest of the input is discarded, so senders never block; the
// error arrives once the input is closed. Broken pipes are not errors.
func start[T any](out io.Writer, bufSize int, write func(*bufio.Writer, T) error) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		for v := range in {
			if err := write(bw, v); err != nil {
				drain(in)
				done <- quiet(err)
				return
			}
		}
		done <- quiet(bw.Flush())
	}()

	return in, done
}

// collect buffers every value, then hands the slice to write.
func collect[T any](out io.Writer, bufSize int, write func(io.Writer, []T) error) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)
	go func() {
		var buf []T
		for v := range in {
			buf = append(buf, v)
		}
		done <- quiet(write(out, buf))
	}()
	return in, done
}

func drain[T any](in <-chan T) {
	for range in {
	}
}

func quiet(err error) error {
	if IsBrokenPipe(err) {
		return nil
	}
	return err
}
