package geopredicates

import "github.com/osuushi/geopredicates/internal/pck"

// Predicates have no error results. Invalid arguments (non-finite
// coordinates, duplicate point identities) and lifecycle calls made out of
// order panic with a ContractViolation, which carries a stack trace.

type ContractViolation = pck.ContractViolation

// HandleContractPanicRecover converts a recovered ContractViolation into
// an error and re-panics anything else:
//
//	defer func() {
//		if recoveredErr := geopredicates.HandleContractPanicRecover(recover()); recoveredErr != nil {
//			err = recoveredErr
//		}
//	}()
func HandleContractPanicRecover(r interface{}) error {
	return pck.HandleContractPanicRecover(r)
}
