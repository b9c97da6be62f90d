package logging

import (
	"context"
	"runtime"
	"runtime/debug"
)

// RecoverPanic logs a panic with its stack trace, then re-panics. It must be
// deferred directly so recover sees the panic.
func RecoverPanic(ctx context.Context) {
	r := recover()
	if r == nil {
		return
	}
	FromContext(ctx).Error().
		Interface("panic", r).
		Str("stack", string(debug.Stack())).
		Msg("PANIC")
	panic(r)
}

// LogRuntimeInfo records the Go runtime and memory figures that help when
// reading a crash report.
func LogRuntimeInfo(ctx context.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	FromContext(ctx).Debug().
		Str("go", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Int("cpus", runtime.NumCPU()).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint64("sys_kb", m.Sys/1024).
		Msg("runtime info")
}
