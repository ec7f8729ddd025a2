package verifier

import (
	"fmt"

	"github.com/huff-language/huffv/types"
)

// fieldElementSize is the width of one encoded field element in bytes.
const fieldElementSize = 32

// EncodeFieldElement converts a decimal string into the fixed-width big-endian
// representation the packed key format uses: exactly 32 bytes, left-padded
// with zeros. The hex rendering of the result is always 64 lowercase
// characters. Values wider than 32 bytes fail with ErrFieldElementOverflow
// rather than being truncated.
func EncodeFieldElement(dec string) (types.HexBytes, error) {
	n := new(types.BigInt).SetString(dec)
	if n == nil {
		return nil, fmt.Errorf("%w: %q is not a base-10 integer", ErrMalformedFieldElement, dec)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q is negative", ErrMalformedFieldElement, dec)
	}
	b := types.HexBytes(n.Bytes())
	if len(b) > fieldElementSize {
		return nil, fmt.Errorf("%w: %q encodes to %d bytes", ErrFieldElementOverflow, dec, len(b))
	}
	return b.Hex32Bytes(), nil
}
