package logger

import (
	"bufio"
	"errors"
	"io"
	"sync"
)

// writeOp is either a line to write or, with ack set, a flush request.
type writeOp struct {
	line []byte
	ack  chan error
}

// asyncWriter moves log lines off the caller's goroutine and fans them out
// to every sink. A sink error sticks and is returned by later calls.
type asyncWriter struct {
	ops   chan writeOp
	done  chan struct{}
	close sync.Once
	sinks []*bufio.Writer

	mu  sync.Mutex
	err error
}

func newAsyncWriter(writers []io.Writer, bufSize int) *asyncWriter {
	if bufSize <= 0 {
		bufSize = 64 * 1024
	}
	w := &asyncWriter{
		ops:  make(chan writeOp, 256),
		done: make(chan struct{}),
	}
	for _, out := range writers {
		if out != nil {
			w.sinks = append(w.sinks, bufio.NewWriterSize(out, bufSize))
		}
	}
	go w.run()
	return w
}

func (w *asyncWriter) run() {
	defer close(w.done)
	for op := range w.ops {
		if op.ack != nil {
			op.ack <- w.flush()
			continue
		}
		w.fail(w.write(op.line))
	}
	w.fail(w.flush())
}

// Write queues a copy of p. It blocks only when the queue is full.
func (w *asyncWriter) Write(p []byte) error {
	if err := w.sticky(); err != nil {
		return err
	}
	if len(p) == 0 {
		return nil
	}
	w.ops <- writeOp{line: append([]byte(nil), p...)}
	return nil
}

// Flush returns once everything queued before it reached the sinks.
func (w *asyncWriter) Flush() error {
	if err := w.sticky(); err != nil {
		return err
	}
	ack := make(chan error, 1)
	w.ops <- writeOp{ack: ack}
	return <-ack
}

// Close drains the queue, flushes and stops the writer goroutine.
func (w *asyncWriter) Close() error {
	w.close.Do(func() { close(w.ops) })
	<-w.done
	return w.sticky()
}

func (w *asyncWriter) write(p []byte) error {
	for _, s := range w.sinks {
		if _, err := s.Write(p); err != nil {
			return err
		}
		if err := s.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func (w *asyncWriter) flush() error {
	var errs []error
	for _, s := range w.sinks {
		errs = append(errs, s.Flush())
	}
	return errors.Join(errs...)
}

func (w *asyncWriter) sticky() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *asyncWriter) fail(err error) {
	if err == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err == nil {
		w.err = err
	}
}
