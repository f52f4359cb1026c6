// Package stats counts how predicate evaluations are resolved: by the
// floating-point filter, by exact arithmetic, or by symbolic perturbation.
//
// Counters are updated atomically and may be read at any time. A reader
// running concurrently with predicate calls sees each counter at some
// recent value; the counters are not read as one atomic unit.
package stats

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

type Predicate int

const (
	Orient2D Predicate = iota
	Orient3D
	Orient3DInexact
	Orient2DLifted
	Orient3DLifted
	InCircle2D
	InSphere3D
	Det3D
	Det4D
	Dot3D

	NumPredicates
)

var predicateNames = [NumPredicates]string{
	Orient2D:        "orient_2d",
	Orient3D:        "orient_3d",
	Orient3DInexact: "orient_3d_inexact",
	Orient2DLifted:  "orient_2dlifted_SOS",
	Orient3DLifted:  "orient_3dlifted_SOS",
	InCircle2D:      "in_circle_2d_SOS",
	InSphere3D:      "in_sphere_3d_SOS",
	Det3D:           "det_3d",
	Det4D:           "det_4d",
	Dot3D:           "dot_3d",
}

func (p Predicate) String() string {
	if p < 0 || p >= NumPredicates {
		return fmt.Sprintf("Predicate(%d)", int(p))
	}
	return predicateNames[p]
}

// Counters is a set of per-predicate counters. The zero value is ready to
// use, and every method is a no-op on a nil *Counters.
type Counters struct {
	fast  [NumPredicates]atomicCounter
	exact [NumPredicates]atomicCounter
	sos   [NumPredicates]atomicCounter
}

func NewCounters() *Counters {
	return new(Counters)
}

// RecordFast counts a call answered by the floating-point filter.
func (c *Counters) RecordFast(p Predicate) {
	if c != nil {
		c.fast[p].add()
	}
}

// RecordExact counts a call that needed exact arithmetic.
func (c *Counters) RecordExact(p Predicate) {
	if c != nil {
		c.exact[p].add()
	}
}

// RecordSOS counts an exact call whose value was zero and had to be
// resolved by symbolic perturbation. Such a call is also counted by
// RecordExact.
func (c *Counters) RecordSOS(p Predicate) {
	if c != nil {
		c.sos[p].add()
	}
}

// Reset zeroes every counter. It must not race with other writers if an
// exact zero is expected afterwards.
func (c *Counters) Reset() {
	if c == nil {
		return
	}
	for p := Predicate(0); p < NumPredicates; p++ {
		c.fast[p].reset()
		c.exact[p].reset()
		c.sos[p].reset()
	}
}

// Snapshot reads every counter. For each predicate SOS is read before
// Exact, so a snapshot never shows more perturbed calls than exact ones.
func (c *Counters) Snapshot() Snapshot {
	var s Snapshot
	for p := Predicate(0); p < NumPredicates; p++ {
		s[p].Predicate = p
		if c == nil {
			continue
		}
		s[p].SOS = c.sos[p].load()
		s[p].Exact = c.exact[p].load()
		s[p].Fast = c.fast[p].load()
	}
	return s
}

type Row struct {
	Predicate Predicate
	Fast      uint64
	Exact     uint64
	SOS       uint64
}

// Calls is the number of calls counted for the predicate.
func (r Row) Calls() uint64 {
	return r.Fast + r.Exact
}

// FilterRate is the fraction of calls answered by the filter, or 1 when
// there were no calls.
func (r Row) FilterRate() float64 {
	if r.Calls() == 0 {
		return 1
	}
	return float64(r.Fast) / float64(r.Calls())
}

type Snapshot [NumPredicates]Row

// Total sums the counters over every predicate.
func (s Snapshot) Total() Row {
	var total Row
	total.Predicate = -1
	for _, r := range s {
		total.Fast += r.Fast
		total.Exact += r.Exact
		total.SOS += r.SOS
	}
	return total
}

// Log emits one record per predicate that was called at least once.
func (s Snapshot) Log(ctx context.Context, logger *slog.Logger) {
	for _, r := range s {
		if r.Calls() == 0 {
			continue
		}
		logger.LogAttrs(ctx, slog.LevelInfo, "predicate stats",
			slog.String("predicate", r.Predicate.String()),
			slog.Uint64("calls", r.Calls()),
			slog.Uint64("fast", r.Fast),
			slog.Uint64("exact", r.Exact),
			slog.Uint64("sos", r.SOS),
		)
	}
}

// WriteTable renders the snapshot as a text table.
func (s Snapshot) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"predicate", "calls", "fast", "exact", "sos", "filter"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	for _, r := range s {
		table.Append(formatRow(r.Predicate.String(), r))
	}
	table.SetFooter(formatRow("total", s.Total()))
	table.Render()
}

func formatRow(name string, r Row) []string {
	return []string{
		name,
		humanize.Comma(int64(r.Calls())),
		humanize.Comma(int64(r.Fast)),
		humanize.Comma(int64(r.Exact)),
		humanize.Comma(int64(r.SOS)),
		fmt.Sprintf("%.1f%%", 100*r.FilterRate()),
	}
}
