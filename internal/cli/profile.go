package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"stegmsg/internal/logging"
	"sync"
	"time"
)

var (
	// MemorySampleRate How often to dump the memory to a file in HZ. Values of less than 1 are recommended to avoid
	// having to sort through too many dump files
	MemorySampleRate = 0.5

	profilerMu     sync.Mutex
	activeProfiler *profiler
)

type profiler struct {
	cpuProfileFile *os.File

	memDumpPath        string
	heapDumps          [][]byte
	shouldProfilerStop chan struct{}
	memProfilerDone    chan struct{}
}

// StartProfiling starts the CPU profiler when cpuProfilePath is set, and periodic heap dumps when memProfileDir is
// set. Profiles are flushed to disk by StopProfiling
func StartProfiling(cpuProfilePath, memProfileDir string) error {
	if cpuProfilePath == "" && memProfileDir == "" {
		return nil
	}

	profilerMu.Lock()
	defer profilerMu.Unlock()
	if activeProfiler != nil {
		return fmt.Errorf("profiler already running")
	}

	p := &profiler{}
	if cpuProfilePath != "" {
		cpuProfileFile, err := os.Create(cpuProfilePath)
		if err != nil {
			return err
		}
		runtime.SetCPUProfileRate(500)
		if err = pprof.StartCPUProfile(cpuProfileFile); err != nil {
			cpuProfileFile.Close()
			return fmt.Errorf("starting CPU profiler: %w", err)
		}
		p.cpuProfileFile = cpuProfileFile
	}

	if memProfileDir != "" && MemorySampleRate > 0 {
		p.memDumpPath = memProfileDir
		p.shouldProfilerStop = make(chan struct{})
		p.memProfilerDone = make(chan struct{})
		go p.sampleMemory()
	}

	activeProfiler = p
	return nil
}

// StopProfiling flushes any running profiles. It is safe to call when no profiler is running
func StopProfiling() {
	profilerMu.Lock()
	p := activeProfiler
	activeProfiler = nil
	profilerMu.Unlock()

	if p != nil {
		p.stop()
	}
}

func (p *profiler) sampleMemory() {
	defer close(p.memProfilerDone)
	ticker := time.NewTicker(time.Duration((1/MemorySampleRate)*1000) * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-p.shouldProfilerStop:
			return
		case <-ticker.C:
			p.dumpMemoryProfile()
		}
	}
}

func (p *profiler) dumpMemoryProfile() {
	w := bytes.NewBuffer(nil)
	if err := pprof.WriteHeapProfile(w); err == nil {
		p.heapDumps = append(p.heapDumps, w.Bytes())
	}
}

func (p *profiler) stop() {
	logger := logging.BuildLogger()

	if p.cpuProfileFile != nil {
		pprof.StopCPUProfile()
		if err := p.cpuProfileFile.Close(); err != nil {
			logger.WithError(err).Error("Error closing CPU profile")
		}
	}

	if p.shouldProfilerStop != nil {
		close(p.shouldProfilerStop)
		<-p.memProfilerDone
		p.dumpMemoryProfile()
		_ = os.MkdirAll(p.memDumpPath, os.ModePerm)
		for dIdx, dump := range p.heapDumps {
			err := os.WriteFile(filepath.Join(p.memDumpPath, fmt.Sprintf("mem-%d.mprof", dIdx)), dump, 0644)
			if err != nil {
				logger.WithError(err).Error("Error writing memory profile to disk")
			}
		}
	}
}
