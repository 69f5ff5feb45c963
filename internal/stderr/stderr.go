//go:build !windows

// Package stderr redirects file descriptor 2 into a pipe so stray writes
// (runtime warnings, cgo-free sqlite diagnostics, third-party prints) cannot
// corrupt the dashboard while the terminal is in alt-screen mode.
package stderr

import (
	"os"
	"syscall"

	"go.uber.org/zap"
)

// Messages receives captured stderr lines.
// The app reads from this channel and shows them as notifications.
var Messages = make(chan string, 100)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
	done       chan struct{}
)

// Start begins capturing stderr output. Captured lines are also logged.
// Returns an error if capture cannot be set up; the program can continue
// without it.
func Start(log *zap.Logger) error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	// Point fd 2 at the pipe's write end
	err = syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd()))
	if err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true
	done = make(chan struct{})

	go func() {
		defer close(done)
		forward(pipeRead, Messages, log)
	}()

	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func WriteOriginal(msg string) {
	if origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
	}
}

// Stop restores the original stderr. Should be called on program exit.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	// Closing the write end ends the forwarder's scan.
	pipeWrite.Close()
	<-done
	pipeRead.Close()

	close(Messages)
	started = false
}
