package expansion

import "sync"

// DefaultArenaSize is the number of components preallocated per arena. It
// covers the exact evaluation of every predicate in this module for
// inputs of ordinary magnitude; larger demands spill to the heap.
const DefaultArenaSize = 4096

// Arena is scratch storage for the expansions of one exact evaluation.
// Expansions are carved out of a preallocated buffer and never move once
// created: when the buffer runs out, further expansions get their own
// allocation. An Arena must not be shared between goroutines.
//
// A nil *Arena is valid and allocates every expansion on the heap.
type Arena struct {
	buf []float64
	off int
}

func NewArena(size int) *Arena {
	return &Arena{buf: make([]float64, size)}
}

// Reset releases every expansion handed out by the arena. Expansions
// obtained before the reset must not be used afterwards.
func (a *Arena) Reset() {
	if a != nil {
		a.off = 0
	}
}

// alloc returns an empty expansion with capacity for n components.
func (a *Arena) alloc(n int) Expansion {
	if a == nil || a.off+n > len(a.buf) {
		return make(Expansion, 0, n)
	}
	e := a.buf[a.off : a.off : a.off+n]
	a.off += n
	return e
}

var arenaPool = sync.Pool{
	New: func() interface{} { return NewArena(DefaultArenaSize) },
}

// GetArena takes an arena from the process-wide pool. The caller owns it
// exclusively until PutArena.
func GetArena() *Arena {
	return arenaPool.Get().(*Arena)
}

// PutArena resets a and returns it to the pool.
func PutArena(a *Arena) {
	a.Reset()
	arenaPool.Put(a)
}

// Float returns x as an expansion.
func (a *Arena) Float(x float64) Expansion {
	if x == 0 {
		return nil
	}
	e := a.alloc(1)
	return append(e, x)
}

// Diff returns the exact difference x-y of two floats.
func (a *Arena) Diff(x, y float64) Expansion {
	hi, lo := TwoDiff(x, y)
	return a.pair(hi, lo)
}

// Product returns the exact product x*y of two floats.
func (a *Arena) Product(x, y float64) Expansion {
	hi, lo := TwoProduct(x, y)
	return a.pair(hi, lo)
}

func (a *Arena) pair(hi, lo float64) Expansion {
	e := a.alloc(2)
	if lo != 0 {
		e = append(e, lo)
	}
	if hi != 0 {
		e = append(e, hi)
	}
	return e
}

// Neg returns -e.
func (a *Arena) Neg(e Expansion) Expansion {
	if len(e) == 0 {
		return nil
	}
	h := a.alloc(len(e))
	for _, c := range e {
		h = append(h, -c)
	}
	return h
}

// Add returns e+f, zero components eliminated.
func (a *Arena) Add(e, f Expansion) Expansion {
	switch {
	case len(e) == 0:
		return f
	case len(f) == 0:
		return e
	}
	h := a.alloc(len(e) + len(f))

	var q, qNew, hh float64
	ei, fi := 0, 0
	enow, fnow := e[0], f[0]
	if (fnow > enow) == (fnow > -enow) {
		q = enow
		ei++
	} else {
		q = fnow
		fi++
	}
	if ei < len(e) && fi < len(f) {
		enow, fnow = e[ei], f[fi]
		if (fnow > enow) == (fnow > -enow) {
			qNew, hh = FastTwoSum(enow, q)
			ei++
		} else {
			qNew, hh = FastTwoSum(fnow, q)
			fi++
		}
		q = qNew
		if hh != 0 {
			h = append(h, hh)
		}
		for ei < len(e) && fi < len(f) {
			enow, fnow = e[ei], f[fi]
			if (fnow > enow) == (fnow > -enow) {
				qNew, hh = TwoSum(q, enow)
				ei++
			} else {
				qNew, hh = TwoSum(q, fnow)
				fi++
			}
			q = qNew
			if hh != 0 {
				h = append(h, hh)
			}
		}
	}
	for ; ei < len(e); ei++ {
		q, hh = TwoSum(q, e[ei])
		if hh != 0 {
			h = append(h, hh)
		}
	}
	for ; fi < len(f); fi++ {
		q, hh = TwoSum(q, f[fi])
		if hh != 0 {
			h = append(h, hh)
		}
	}
	if q != 0 {
		h = append(h, q)
	}
	return h
}

// Sub returns e-f.
func (a *Arena) Sub(e, f Expansion) Expansion {
	return a.Add(e, a.Neg(f))
}

// Scale returns e*b, zero components eliminated.
func (a *Arena) Scale(e Expansion, b float64) Expansion {
	if len(e) == 0 || b == 0 {
		return nil
	}
	h := a.alloc(2 * len(e))

	q, hh := TwoProduct(e[0], b)
	if hh != 0 {
		h = append(h, hh)
	}
	for _, enow := range e[1:] {
		product1, product0 := TwoProduct(enow, b)
		var sum float64
		sum, hh = TwoSum(q, product0)
		if hh != 0 {
			h = append(h, hh)
		}
		q, hh = FastTwoSum(product1, sum)
		if hh != 0 {
			h = append(h, hh)
		}
	}
	if q != 0 {
		h = append(h, q)
	}
	return h
}

// Mul returns e*f. The shorter operand is distributed over the longer one.
func (a *Arena) Mul(e, f Expansion) Expansion {
	if len(e) < len(f) {
		e, f = f, e
	}
	var product Expansion
	for _, c := range f {
		product = a.Add(product, a.Scale(e, c))
	}
	return product
}

// Compress returns an expansion equal to e with as few components as the
// value allows; its largest component approximates e to within one ulp.
func (a *Arena) Compress(e Expansion) Expansion {
	if len(e) < 2 {
		return e
	}
	n := len(e)
	h := a.alloc(n)[:n]

	bottom := n - 1
	q := e[bottom]
	for i := n - 2; i >= 0; i-- {
		qNew, lo := FastTwoSum(q, e[i])
		if lo != 0 {
			h[bottom] = qNew
			bottom--
			q = lo
		} else {
			q = qNew
		}
	}
	top := 0
	for i := bottom + 1; i < n; i++ {
		qNew, lo := FastTwoSum(h[i], q)
		if lo != 0 {
			h[top] = lo
			top++
		}
		q = qNew
	}
	h[top] = q
	return h[:top+1]
}
