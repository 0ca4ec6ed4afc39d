// Package prof wires the runtime's CPU and heap profilers to CLI flags.
package prof

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

var cpuFile *os.File

// StartCPU begins CPU profiling into the file at path. A profile already
// in progress must be stopped before starting another.
func StartCPU(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("start cpu profile: %w", err)
	}
	cpuFile = f
	return nil
}

// StopCPU flushes and closes an active CPU profile. Safe to call when no
// profile is running.
func StopCPU() {
	pprof.StopCPUProfile()
	if cpuFile == nil {
		return
	}
	_ = cpuFile.Close()
	cpuFile = nil
}

// WriteMem forces a GC and writes a heap profile to path.
func WriteMem(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create heap profile: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write heap profile: %w", err)
	}
	return nil
}
