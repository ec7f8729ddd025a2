// Package verifier converts a snarkjs Groth16 verification key into a packed
// hex blob and instantiates a Huff verifier template with the blob and the
// memory layout offsets derived from the key's IC count. Every function here
// is a pure transformation; file and terminal I/O belong to the caller.
package verifier

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/huff-language/huffv/vkey"
)

// DefaultTemplate is the Huff verifier template bundled with the generator.
//
//go:embed templates/verifier.huff
var DefaultTemplate string

// Generate packs the verification key, computes the memory layout from its IC
// count and instantiates the template with the results. It fails if any
// placeholder remains unresolved in the output, so a template with a
// misspelled or unsupported token is caught at generation time instead of
// producing broken bytecode.
func Generate(vk *vkey.VerificationKey, template string) (string, error) {
	packed, err := Pack(vk)
	if err != nil {
		return "", fmt.Errorf("packing verification key: %w", err)
	}
	n := vk.NumInputCommitments()
	layout, err := ComputeLayout(n)
	if err != nil {
		return "", fmt.Errorf("computing memory layout: %w", err)
	}

	subs := map[Token]string{
		TokenPackedVKey:     packed.String(),
		TokenNumICs:         hexOffset(n),
		TokenICBytes:        hexOffset(layout.ICByteSpan),
		TokenPubInputLenPtr: hexOffset(layout.PubInputLenPtr),
		TokenPubInputPtr:    hexOffset(layout.PubInputPtr),
	}
	for i, off := range layout.PairingInputs {
		subs[PairingInputToken(i)] = hexOffset(off)
	}
	for i, off := range layout.PubInputs {
		subs[PublicInputToken(i)] = hexOffset(off)
	}

	out := Instantiate(template, subs)
	if left := UnresolvedTokens(out); len(left) > 0 {
		return "", fmt.Errorf("%w: %s", ErrUnresolvedToken, strings.Join(left, ", "))
	}
	return out, nil
}
