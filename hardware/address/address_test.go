package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsi-vcs/vcs2600/hardware/address"
)

func TestAddressRoundTrip(t *testing.T) {
	for _, v := range []uint16{0x0000, 0x00f0, 0xffff, 0x1234} {
		a := address.New(v)
		assert.Equal(t, v, a.Address())
	}
}

func TestAdd(t *testing.T) {
	cases := []struct {
		name   string
		start  uint16
		offset uint8
		want   uint16
	}{
		{"no wrap", 0x1000, 0x10, 0x1010},
		{"wraps at 16 bits", 0xffff, 0x01, 0x0000},
		{"wraps across page", 0x10fe, 0x02, 0x1100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := address.New(c.start).Add(c.offset)
			assert.Equal(t, c.want, got.Address())
		})
	}
}

func TestAddIsAssociative(t *testing.T) {
	a := address.New(0xfff0)
	step := a.Add(0x08).Add(0x08)
	oneShot := a.Add(0x10)
	assert.Equal(t, oneShot.Address(), step.Address())
}

func TestSamePage(t *testing.T) {
	assert.True(t, address.New(0x10f0).SamePage(address.New(0x10ff)))
	assert.False(t, address.New(0x10ff).SamePage(address.New(0x1100)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "$1234", address.New(0x1234).String())
}
