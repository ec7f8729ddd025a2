package verifier

import (
	"fmt"
	"strconv"

	"github.com/huff-language/huffv/types"
	"github.com/huff-language/huffv/vkey"
)

// Pack serializes a verification key into the packed blob the verifier
// bytecode embeds: alpha1, beta2, gamma2, delta2, the IC count, then every IC
// point, each element encoded through EncodeFieldElement. The String() of the
// result is the single 0x-prefixed hex string.
//
// G2 coordinates are emitted imaginary part before real part, for both rows of
// each point. That ordering is what the on-chain pairing precompile expects
// for Fp2 elements and must not be changed.
func Pack(vk *vkey.VerificationKey) (types.HexBytes, error) {
	if err := checkShape(vk); err != nil {
		return nil, err
	}

	out := make(types.HexBytes, 0, (15+2*len(vk.IC))*fieldElementSize)

	var err error
	if out, err = appendG1(out, "vk_alpha_1", vk.VkAlpha1); err != nil {
		return nil, err
	}
	if out, err = appendG2(out, "vk_beta_2", vk.VkBeta2); err != nil {
		return nil, err
	}
	if out, err = appendG2(out, "vk_gamma_2", vk.VkGamma2); err != nil {
		return nil, err
	}
	if out, err = appendG2(out, "vk_delta_2", vk.VkDelta2); err != nil {
		return nil, err
	}

	// The IC count goes through the same 32-byte encoder as the field
	// elements, so the consumer can read it as one more word.
	count, err := EncodeFieldElement(strconv.Itoa(len(vk.IC)))
	if err != nil {
		return nil, fmt.Errorf("IC count: %w", err)
	}
	out = append(out, count...)

	for i, p := range vk.IC {
		if out, err = appendG1(out, fmt.Sprintf("IC[%d]", i), p); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// checkShape validates the coordinate structure before any indexing happens,
// so a truncated key fails with a shape error instead of a panic.
func checkShape(vk *vkey.VerificationKey) error {
	if len(vk.VkAlpha1) < 2 {
		return fmt.Errorf("%w: vk_alpha_1 has %d coordinates", ErrEmptyVerificationKey, len(vk.VkAlpha1))
	}
	for name, p := range map[string][][]string{
		"vk_beta_2":  vk.VkBeta2,
		"vk_gamma_2": vk.VkGamma2,
		"vk_delta_2": vk.VkDelta2,
	} {
		if len(p) < 2 {
			return fmt.Errorf("%w: %s has %d coordinate pairs", ErrEmptyVerificationKey, name, len(p))
		}
		for r := 0; r < 2; r++ {
			if len(p[r]) < 2 {
				return fmt.Errorf("%w: %s[%d] has %d components", ErrEmptyVerificationKey, name, r, len(p[r]))
			}
		}
	}
	for i, p := range vk.IC {
		if len(p) < 2 {
			return fmt.Errorf("%w: IC[%d] has %d coordinates", ErrEmptyVerificationKey, i, len(p))
		}
	}
	return nil
}

func appendG1(out types.HexBytes, name string, p []string) (types.HexBytes, error) {
	for i := 0; i < 2; i++ {
		e, err := EncodeFieldElement(p[i])
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
		}
		out = append(out, e...)
	}
	return out, nil
}

func appendG2(out types.HexBytes, name string, p [][]string) (types.HexBytes, error) {
	for r := 0; r < 2; r++ {
		// imaginary component first
		for _, c := range [2]int{1, 0} {
			e, err := EncodeFieldElement(p[r][c])
			if err != nil {
				return nil, fmt.Errorf("%s[%d][%d]: %w", name, r, c, err)
			}
			out = append(out, e...)
		}
	}
	return out, nil
}
