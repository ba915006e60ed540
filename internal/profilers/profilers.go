// Package profilers sets up profiling for the boardbots programs: engine searches are CPU bound, and
// these are the tools to find where the time goes.
//
// If linked, it will install the profiler flags.
package profilers

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagProfiler   = flag.Int("prof", -1, "If set, serves the HTTP profiler (/debug/pprof) at the given port.")
	flagCPUProfile = flag.String("cpu_profile", "", "write cpu profile to `file`")
	flagMemProfile = flag.String("mem_profile", "", "write a heap profile to `file` on exit")
)

// Config of the profilers. The zero value disables all of them.
type Config struct {
	// HTTPPort to serve net/http/pprof, if >= 0.
	HTTPPort int

	// CPUProfile and MemProfile are the paths where to write the profiles, if not empty.
	CPUProfile, MemProfile string
}

// FromFlags returns the configuration set by the flags -prof, -cpu_profile and -mem_profile.
func FromFlags() Config {
	return Config{HTTPPort: *flagProfiler, CPUProfile: *flagCPUProfile, MemProfile: *flagMemProfile}
}

// Session of profiling started by Start. Call Stop before exiting the program.
type Session struct {
	ctx     context.Context
	config  Config
	cpuFile *os.File
	addr    string
}

// Start the profilers configured. Follow it with a deferred call to Session.Stop.
//
// The context is used by the HTTP profiler: Stop keeps the program alive until it is done,
// so one can still read the profile.
func Start(ctx context.Context, config Config) (*Session, error) {
	s := &Session{ctx: ctx, config: config, addr: "disabled"}
	if config.CPUProfile != "" {
		f, err := os.Create(config.CPUProfile)
		if err != nil {
			return nil, errors.Wrapf(err, "could not create CPU profile %q", config.CPUProfile)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, errors.Wrapf(err, "could not start CPU profile")
		}
		s.cpuFile = f
	}
	if config.HTTPPort >= 0 {
		s.addr = fmt.Sprintf("localhost:%d", config.HTTPPort)
		fmt.Printf("Starting profiler on %s/debug/pprof\n", s.addr)
		fmt.Printf("- You can access it with: $ go tool pprof %s/debug/pprof/heap\n", s.addr)
		fmt.Printf("- Program will be kept alive on end, you will have to interrupt it (Ctrl+C) to exit\n")
		go func() {
			klog.Fatal(http.ListenAndServe(s.addr, nil))
		}()
	}
	return s, nil
}

// Stop the CPU profile and write the heap profile, if configured. If the HTTP profiler is running,
// it blocks until the context given to Start is done.
func (s *Session) Stop() error {
	if s.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := s.cpuFile.Close(); err != nil {
			return errors.Wrapf(err, "closing CPU profile %q", s.config.CPUProfile)
		}
		s.cpuFile = nil
	}
	if s.config.MemProfile != "" {
		if err := s.writeHeapProfile(); err != nil {
			return err
		}
	}
	if s.config.HTTPPort < 0 || s.ctx.Err() != nil {
		return nil
	}

	// Garbage collect, to see if there is anything leaking.
	for range 10 {
		runtime.GC()
	}
	fmt.Printf("- Program finished: kept alive with profiler opened at %s/debug/pprof\n", s.addr)
	fmt.Printf("- Interrupt (Ctrl+C) to exit\n")
	<-s.ctx.Done()
	fmt.Printf("... exiting ...\n")
	return nil
}

func (s *Session) writeHeapProfile() error {
	f, err := os.Create(s.config.MemProfile)
	if err != nil {
		return errors.Wrapf(err, "could not create heap profile %q", s.config.MemProfile)
	}
	defer func() { _ = f.Close() }()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return errors.Wrapf(err, "could not write heap profile %q", s.config.MemProfile)
	}
	return nil
}
