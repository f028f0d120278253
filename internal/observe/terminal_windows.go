//go:build windows

package observe

import "os"

// Windows consoles have no resize signal; Terminal only reports its current size there.
func notifyResize(chan<- os.Signal) bool {
	return false
}
