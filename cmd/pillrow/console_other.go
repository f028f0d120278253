//go:build !windows

package main

// initConsole is a no-op: Unix terminals speak UTF-8 and ANSI already.
func initConsole() {}
