//go:build !windows

package observe

import (
	"os"
	"os/signal"
	"syscall"
)

func notifyResize(c chan<- os.Signal) bool {
	signal.Notify(c, syscall.SIGWINCH)
	return true
}
