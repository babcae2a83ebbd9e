package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/tokenfactoryconst"
)

const (
	// ErrAlphabetWitnessFailed appears when the method must be
	// called by the Alphabet but was not.
	ErrAlphabetWitnessFailed = tokenfactoryconst.ErrNotAuthorized + ": alphabet witness check failed"
	// ErrManagerWitnessFailed appears when the method must be called
	// by the token manager but was not.
	ErrManagerWitnessFailed = tokenfactoryconst.ErrNotAuthorized + ": manager witness check failed"
)

// CheckAlphabetWitness checks witness of the Alphabet multisignature account.
// It panics with ErrAlphabetWitnessFailed message on fail.
func CheckAlphabetWitness() {
	checkWitnessWithPanic(AlphabetAddress(), ErrAlphabetWitnessFailed)
}

// CheckManagerWitness checks witness of the passed manager.
// It panics with ErrManagerWitnessFailed message on fail.
func CheckManagerWitness(manager []byte) {
	checkWitnessWithPanic(manager, ErrManagerWitnessFailed)
}

func checkWitnessWithPanic(caller []byte, panicMsg string) {
	if !runtime.CheckWitness(caller) {
		panic(panicMsg)
	}
}
