package verifier

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/huff-language/huffv/vkey"
)

// testKey returns a key whose every element is a distinct small integer, so
// element positions in the packed output are distinguishable.
func testKey() *vkey.VerificationKey {
	return &vkey.VerificationKey{
		Protocol: "groth16",
		Curve:    "bn128",
		NPublic:  0,
		VkAlpha1: []string{"1", "2"},
		VkBeta2:  [][]string{{"3", "4"}, {"5", "6"}},
		VkGamma2: [][]string{{"7", "8"}, {"9", "10"}},
		VkDelta2: [][]string{{"11", "12"}, {"13", "14"}},
		IC:       [][]string{{"15", "16"}},
	}
}

// word returns the i-th 64-character segment of the packed hex string,
// skipping the 0x prefix.
func word(packed string, i int) string {
	return packed[2+64*i : 2+64*(i+1)]
}

// hexWord is the 64-character encoding of a small integer.
func hexWord(v int) string {
	return fmt.Sprintf("%064x", v)
}

func TestPack(t *testing.T) {
	c := qt.New(t)

	c.Run("exact length", func(c *qt.C) {
		packed, err := Pack(testKey())
		c.Assert(err, qt.IsNil)
		s := packed.String()
		// 14 fixed elements + 1 count + 2 per IC point, 64 hex chars each,
		// plus the single 0x prefix.
		nICs := 1
		c.Assert(s, qt.HasLen, 2+(14+1+2*nICs)*64)
		c.Assert(strings.HasPrefix(s, "0x"), qt.IsTrue)
		c.Assert(strings.Count(s, "0x"), qt.Equals, 1)
	})

	c.Run("element order", func(c *qt.C) {
		packed, err := Pack(testKey())
		c.Assert(err, qt.IsNil)
		s := packed.String()

		want := []int{
			1, 2, // alpha1 x, y
			4, 3, 6, 5, // beta2: imag before real, both rows
			8, 7, 10, 9, // gamma2
			12, 11, 14, 13, // delta2
			1,      // IC count
			15, 16, // IC[0] x, y
		}
		for i, v := range want {
			c.Assert(word(s, i), qt.Equals, hexWord(v), qt.Commentf("element %d", i))
		}
	})

	c.Run("count grows with IC list", func(c *qt.C) {
		vk := testKey()
		vk.IC = append(vk.IC, []string{"17", "18"}, []string{"19", "20"})
		packed, err := Pack(vk)
		c.Assert(err, qt.IsNil)
		s := packed.String()
		c.Assert(s, qt.HasLen, 2+(14+1+2*3)*64)
		c.Assert(word(s, 14), qt.Equals, hexWord(3))
		c.Assert(word(s, 19), qt.Equals, hexWord(19))
	})

	c.Run("missing alpha coordinate", func(c *qt.C) {
		vk := testKey()
		vk.VkAlpha1 = []string{"1"}
		_, err := Pack(vk)
		c.Assert(errors.Is(err, ErrEmptyVerificationKey), qt.IsTrue)
		c.Assert(err.Error(), qt.Contains, "vk_alpha_1")
	})

	c.Run("missing G2 row", func(c *qt.C) {
		vk := testKey()
		vk.VkDelta2 = [][]string{{"11", "12"}}
		_, err := Pack(vk)
		c.Assert(errors.Is(err, ErrEmptyVerificationKey), qt.IsTrue)
		c.Assert(err.Error(), qt.Contains, "vk_delta_2")
	})

	c.Run("truncated IC point", func(c *qt.C) {
		vk := testKey()
		vk.IC = append(vk.IC, []string{"17"})
		_, err := Pack(vk)
		c.Assert(errors.Is(err, ErrEmptyVerificationKey), qt.IsTrue)
		c.Assert(err.Error(), qt.Contains, "IC[1]")
	})

	c.Run("malformed element names field", func(c *qt.C) {
		vk := testKey()
		vk.VkGamma2[1][0] = "not a number"
		_, err := Pack(vk)
		c.Assert(errors.Is(err, ErrMalformedFieldElement), qt.IsTrue)
		c.Assert(err.Error(), qt.Contains, "vk_gamma_2[1][0]")
	})

	c.Run("oversized element names index", func(c *qt.C) {
		vk := testKey()
		vk.IC[0][1] = strings.Repeat("9", 100)
		_, err := Pack(vk)
		c.Assert(errors.Is(err, ErrFieldElementOverflow), qt.IsTrue)
		c.Assert(err.Error(), qt.Contains, "IC[0][1]")
	})
}
