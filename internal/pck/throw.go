package pck

import "github.com/pkg/errors"

// A predicate either returns a correct sign or does not return at all.
// Every precondition violation panics with a ContractViolation; outer
// layers that want an error instead recover it with
// HandleContractPanicRecover.

type ContractViolation struct {
	error
}

func (v ContractViolation) Unwrap() error {
	return v.error
}

// Fatalf panics with a ContractViolation.
func Fatalf(format string, args ...interface{}) {
	panic(ContractViolation{errors.Errorf(format, args...)})
}

// HandleContractPanicRecover turns a recovered ContractViolation into an
// error. Any other recovered value is re-panicked.
func HandleContractPanicRecover(r interface{}) error {
	if r != nil {
		if violation, ok := r.(ContractViolation); ok {
			return violation
		}
		panic(r)
	}
	return nil
}

func requireFinite(name string, coords ...float64) {
	for _, x := range coords {
		// x-x is NaN exactly when x is infinite or NaN.
		if x-x != 0 {
			Fatalf("%s: non-finite coordinate %v", name, x)
		}
	}
}

func requireFinite2(name string, pts ...[2]float64) {
	for _, p := range pts {
		requireFinite(name, p[0], p[1])
	}
}

func requireFinite3(name string, pts ...[3]float64) {
	for _, p := range pts {
		requireFinite(name, p[0], p[1], p[2])
	}
}
