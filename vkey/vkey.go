// Package vkey models the Groth16 verification key JSON document emitted by
// snarkjs. Field elements are kept as decimal strings, exactly as produced by
// the prover toolchain; no curve arithmetic is performed here.
package vkey

import (
	"encoding/json"
	"fmt"
)

// VerificationKey represents the verification key structure output by SnarkJS.
// VkAlphabeta12 is never consumed by the packer, but it is carried so that a
// key can be re-serialized without losing information.
type VerificationKey struct {
	Protocol      string       `json:"protocol"`
	Curve         string       `json:"curve"`
	NPublic       int          `json:"nPublic"`
	VkAlpha1      []string     `json:"vk_alpha_1"`
	VkBeta2       [][]string   `json:"vk_beta_2"`
	VkGamma2      [][]string   `json:"vk_gamma_2"`
	VkDelta2      [][]string   `json:"vk_delta_2"`
	VkAlphabeta12 [][][]string `json:"vk_alphabeta_12"`
	IC            [][]string   `json:"IC"`
}

// NumInputCommitments returns the number of points in the IC list. This, not
// NPublic, is the authoritative count for packing and layout computation: a
// well-formed key carries NPublic+1 commitments, but the list length wins when
// the two disagree.
func (vk *VerificationKey) NumInputCommitments() int {
	return len(vk.IC)
}

// Unmarshal parses the JSON-encoded verification key data.
func Unmarshal(data []byte) (*VerificationKey, error) {
	var vk VerificationKey
	if err := json.Unmarshal(data, &vk); err != nil {
		return nil, fmt.Errorf("failed to parse verification key JSON: %w", err)
	}
	return &vk, nil
}

// Marshal serializes the given verification key into pretty-printed JSON.
func Marshal(vk *VerificationKey) ([]byte, error) {
	return json.MarshalIndent(vk, "", "  ")
}
