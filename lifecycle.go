package geopredicates

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/osuushi/geopredicates/internal/pck"
	"github.com/osuushi/geopredicates/internal/stats"
)

// Initialize and Terminate delimit the period in which the package-level
// predicates may be called: before Initialize and after Terminate every
// predicate panics with a ContractViolation. Initialize resets the
// counters, Terminate reports them. Each may be called once, Initialize
// first, and neither concurrently with predicates.

type lifecycleState int32

const (
	stateNew lifecycleState = iota
	stateInitialized
	stateTerminated
)

type lifecycle struct {
	state    atomic.Int32
	counters *stats.Counters
}

var session = &lifecycle{counters: counters}

// check panics unless the session is between Initialize and Terminate.
func (l *lifecycle) check(name string) {
	switch lifecycleState(l.state.Load()) {
	case stateInitialized:
	case stateNew:
		pck.Fatalf("%s: called before initialize", name)
	default:
		pck.Fatalf("%s: called after terminate", name)
	}
}

func (l *lifecycle) initialize() {
	if !l.state.CompareAndSwap(int32(stateNew), int32(stateInitialized)) {
		pck.Fatalf("initialize: called twice or after terminate")
	}
	pck.DefaultBounds()
	l.counters.Reset()
}

func (l *lifecycle) terminate(logger *slog.Logger) {
	if !l.state.CompareAndSwap(int32(stateInitialized), int32(stateTerminated)) {
		pck.Fatalf("terminate: called without a matching initialize")
	}
	total := l.counters.Snapshot().Total()
	logger.LogAttrs(context.Background(), slog.LevelDebug, "predicates terminated",
		slog.Uint64("calls", total.Calls()),
		slog.Uint64("exact", total.Exact),
		slog.Uint64("sos", total.SOS),
	)
}

// Initialize starts a statistics session. Calling it twice, or after
// Terminate, panics with a ContractViolation.
func Initialize() {
	session.initialize()
}

// Terminate ends the session started by Initialize and logs the totals at
// debug level. Calling it without Initialize panics with a
// ContractViolation.
func Terminate() {
	session.terminate(Logger())
}

// ShowStats reports how many calls of each predicate were answered by the
// floating-point filter, by exact arithmetic and by symbolic perturbation.
// The report is logged at info level, or written to standard error as a
// table when the logger set with SetLogger discards info records, as the
// default one does.
func ShowStats() {
	showStats(Logger(), os.Stderr)
}

func showStats(logger *slog.Logger, w io.Writer) {
	ctx := context.Background()
	if logger.Enabled(ctx, slog.LevelInfo) {
		counters.Snapshot().Log(ctx, logger)
		return
	}
	counters.Snapshot().WriteTable(w)
}

// Stats returns the current counters. Under concurrent calls the snapshot
// may lag behind by the calls still in flight.
func Stats() stats.Snapshot {
	return counters.Snapshot()
}
