//go:build windows

package main

import (
	"syscall"
	"unsafe"
)

// Windows API functions for console control
var (
	modkernel32            = syscall.NewLazyDLL("kernel32.dll")
	procSetConsoleOutputCP = modkernel32.NewProc("SetConsoleOutputCP")
	procGetConsoleMode     = modkernel32.NewProc("GetConsoleMode")
	procSetConsoleMode     = modkernel32.NewProc("SetConsoleMode")
	procGetStdHandle       = modkernel32.NewProc("GetStdHandle")
)

const (
	stdOutputHandle                 = uintptr(-11 & 0xFFFFFFFF)
	stdErrorHandle                  = uintptr(-12 & 0xFFFFFFFF)
	enableVirtualTerminalProcessing = 0x0004
	cpUTF8                          = 65001
)

// initConsole switches the console to UTF-8 (the toggle decoration is not ASCII)
// and enables ANSI escape sequences for the pill styles.
func initConsole() {
	procSetConsoleOutputCP.Call(cpUTF8)

	for _, std := range []uintptr{stdOutputHandle, stdErrorHandle} {
		handle, _, _ := procGetStdHandle.Call(std)
		if handle == 0 {
			continue
		}
		var mode uint32
		ok, _, _ := procGetConsoleMode.Call(handle, uintptr(unsafe.Pointer(&mode)))
		if ok == 0 {
			// Not a console, e.g. stdout piped to a host
			continue
		}
		procSetConsoleMode.Call(handle, uintptr(mode|enableVirtualTerminalProcessing))
	}
}
