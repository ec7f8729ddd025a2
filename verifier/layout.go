package verifier

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	// icPointSize is the memory footprint of one IC point (two 32-byte words).
	icPointSize = 0x40
	// pairingPrefixSize is the fixed region preceding the IC data in the
	// verifier's memory model.
	pairingPrefixSize = 0xC0
	// pairingSpanSize is the region reserved for the 13 pairing input slots
	// and their working memory.
	pairingSpanSize = 0x300
	// pubInputLenOffset and pubInputOffset locate the public input length word
	// and the first public input word relative to the input pointer.
	pubInputLenOffset = 0x100
	pubInputOffset    = 0x120
	// maxPublicInputs is the number of fixed public input slots the layout
	// provides.
	maxPublicInputs = 8
)

// pairingInputOffsets are the relative bases of the 13 pairing input slots:
// pairs of G1/G2 coordinates across the pairing terms of the Groth16 check.
// The table is a fixed contract with the verifier bytecode.
var pairingInputOffsets = [13]int{
	0x00, 0x20, 0x40, 0x60, 0x80, 0xA0, 0xC0, 0x180, 0x1A0, 0x1C0, 0x240, 0x260, 0x280,
}

// Layout holds the absolute byte offsets a verifier contract uses to locate
// pairing inputs and public inputs at runtime. All offsets derive from the
// number of IC points.
type Layout struct {
	ICByteSpan     int
	PairingBase    int
	PairingInputs  [13]int
	InputPtr       int
	PubInputLenPtr int
	PubInputPtr    int
	PubInputs      [maxPublicInputs]int
}

// ComputeLayout derives the verifier memory layout from the IC count. A key
// with more public inputs than the layout has slots for is rejected instead of
// silently dropping slots.
func ComputeLayout(icCount int) (*Layout, error) {
	if icCount < 1 {
		return nil, fmt.Errorf("%w: IC list is empty", ErrEmptyVerificationKey)
	}
	if icCount-1 > maxPublicInputs {
		return nil, fmt.Errorf("%w: %d public inputs, layout has %d slots",
			ErrTooManyPublicInputs, icCount-1, maxPublicInputs)
	}

	l := &Layout{ICByteSpan: icCount * icPointSize}
	l.PairingBase = pairingPrefixSize + l.ICByteSpan
	for i, rel := range pairingInputOffsets {
		l.PairingInputs[i] = l.PairingBase + rel
	}
	l.InputPtr = l.PairingBase + pairingSpanSize
	l.PubInputLenPtr = l.InputPtr + pubInputLenOffset
	l.PubInputPtr = l.InputPtr + pubInputOffset
	for i := range l.PubInputs {
		l.PubInputs[i] = l.InputPtr + i*0x20
	}
	return l, nil
}

// hexOffset renders an offset as minimal-width lowercase 0x hex, the form the
// template constants use. This is deliberately not the 32-byte padded encoding
// of the packed key elements.
func hexOffset(v int) string {
	return hexutil.EncodeUint64(uint64(v))
}
