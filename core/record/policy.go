package record

import (
	"github.com/trezcool/shule/core"
)

// Policy decides what a failed operation hands back to the caller.
// Both policies log the failure.
type Policy int

const (
	// HardFail returns the error to the caller.
	HardFail Policy = iota
	// SoftFail swallows the error; the caller gets an empty/absent/false result.
	SoftFail
)

func (p Policy) String() string {
	if p == SoftFail {
		return "soft"
	}
	return "hard"
}

// Policies holds one Policy per operation category.
type Policies struct {
	Read   Policy // fetch all & fetch by id
	Write  Policy // create & update
	Delete Policy
}

// DefaultPolicies: reads and deletes degrade, writes fail loudly.
var DefaultPolicies = Policies{Read: SoftFail, Write: HardFail, Delete: SoftFail}

// StrictPolicies fail every operation loudly.
var StrictPolicies = Policies{Read: HardFail, Write: HardFail, Delete: HardFail}

func (p Policy) handle(logger core.Logger, msg string, err error) error {
	logger.Error(msg, err)
	if p == SoftFail {
		return nil
	}
	return err
}
