package types

import (
	"encoding/json"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestHexBytes(t *testing.T) {
	c := qt.New(t)

	c.Run("String", func(c *qt.C) {
		testCases := []struct {
			name string
			in   HexBytes
			want string
		}{
			{name: "nil slice", in: nil, want: "0x"},
			{name: "empty", in: HexBytes{}, want: "0x"},
			{name: "non-empty", in: HexBytes{0x00, 0xAB, 0xCD}, want: "0x00abcd"},
		}

		for _, tc := range testCases {
			tc := tc
			c.Run(tc.name, func(c *qt.C) {
				c.Assert((&tc.in).String(), qt.Equals, tc.want)
			})
		}
	})

	c.Run("BigInt", func(c *qt.C) {
		in := HexBytes{0x01, 0x00}
		c.Assert((&in).BigInt().String(), qt.Equals, "256")
	})

	c.Run("LeftPad", func(c *qt.C) {
		testCases := []struct {
			name string
			in   HexBytes
			n    int
			want HexBytes
		}{
			{
				name: "shorter pads with zeros",
				in:   HexBytes{0xAA, 0xBB},
				n:    4,
				want: HexBytes{0x00, 0x00, 0xAA, 0xBB},
			},
			{
				name: "equal length copy",
				in:   HexBytes{0xAA, 0xBB},
				n:    2,
				want: HexBytes{0xAA, 0xBB},
			},
			{
				name: "longer returns copy",
				in:   HexBytes{0xAA, 0xBB, 0xCC},
				n:    2,
				want: HexBytes{0xAA, 0xBB, 0xCC},
			},
		}

		for _, tc := range testCases {
			tc := tc
			c.Run(tc.name, func(c *qt.C) {
				c.Assert(tc.in.LeftPad(tc.n), qt.DeepEquals, tc.want)
			})
		}
	})

	c.Run("Hex32Bytes", func(c *qt.C) {
		in := HexBytes{0xFF}
		out := in.Hex32Bytes()
		c.Assert(out, qt.HasLen, 32)
		c.Assert(out[31], qt.Equals, byte(0xFF))
		c.Assert(out[:31], qt.DeepEquals, make(HexBytes, 31))
	})

	c.Run("JSON round trip", func(c *qt.C) {
		hb := HexBytes{0x01, 0x02, 0xFF}
		data, err := json.Marshal(hb)
		c.Assert(err, qt.IsNil)
		c.Assert(string(data), qt.Equals, `"0x0102ff"`)

		var back HexBytes
		c.Assert(json.Unmarshal(data, &back), qt.IsNil)
		c.Assert(back.Equal(hb), qt.IsTrue)
	})

	c.Run("HexStringToHexBytes", func(c *qt.C) {
		hb, err := HexStringToHexBytes("0x0102ff")
		c.Assert(err, qt.IsNil)
		c.Assert(hb, qt.DeepEquals, HexBytes{0x01, 0x02, 0xFF})

		_, err = HexStringToHexBytes("0xzz")
		c.Assert(err, qt.IsNotNil)
	})
}
