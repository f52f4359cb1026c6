package stats

import "sync/atomic"

// atomicCounter is padded to a cache line so that predicates counted from
// different goroutines do not contend on the same line.
type atomicCounter struct {
	n atomic.Uint64
	_ [56]byte
}

func (c *atomicCounter) add()         { c.n.Add(1) }
func (c *atomicCounter) load() uint64 { return c.n.Load() }
func (c *atomicCounter) reset()       { c.n.Store(0) }
