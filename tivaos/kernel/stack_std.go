//go:build !tinygo

package kernel

import "runtime/debug"

func captureStack(limit int) []byte {
	st := debug.Stack()
	if len(st) > limit {
		st = st[:limit]
	}
	return st
}
