package quizdown

import (
	"sync"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var installTracer sync.Once

// tracer traces to the core tracer. Unless the application configured
// one, a go-log adapter at error level replaces the no-op default.
func tracer() tracing.Trace {
	installTracer.Do(func() {
		if gtrace.CoreTracer == nil || gtrace.CoreTracer == gtrace.NoOpTrace {
			gtrace.CoreTracer = gologadapter.New()
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
		}
	})
	return gtrace.CoreTracer
}
