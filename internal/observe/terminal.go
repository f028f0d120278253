package observe

import (
	"os"
	"os/signal"
	"sync"

	"github.com/charmbracelet/x/term"
)

// Terminal observes the size of the terminal attached to a file descriptor.
type Terminal struct {
	fd uintptr
}

// NewTerminal observes the terminal behind f.
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{fd: f.Fd()}
}

// Current returns the terminal size, or false when fd is not a terminal.
func (t *Terminal) Current() (Size, bool) {
	w, h, err := term.GetSize(t.fd)
	if err != nil {
		return Size{}, false
	}
	return Size{Width: w, Height: h}, true
}

// Subscribe calls fn with the new size after each terminal resize.
func (t *Terminal) Subscribe(fn func(Size)) Unsubscribe {
	sigs := make(chan os.Signal, 1)
	if !notifyResize(sigs) {
		return Nop
	}
	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			case <-sigs:
				if size, ok := t.Current(); ok {
					fn(size)
				}
			}
		}
	}()
	return Once(func() {
		signal.Stop(sigs)
		close(done)
		wg.Wait()
	})
}
