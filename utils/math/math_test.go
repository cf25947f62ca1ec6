package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	require.Equal(t, 3, Mod(3, 7))
	require.Equal(t, 0, Mod(14, 7))
	require.Equal(t, 4, Mod(-3, 7))
	require.Equal(t, 0, Mod(-7, 7))
	require.Equal(t, 0, Mod(5, 1))
	require.Equal(t, int32(67), Mod(int32(-2147483648), 101))
	for a := -50; a <= 50; a++ {
		m := Mod(a, 13)
		require.True(t, m >= 0 && m < 13)
		require.Equal(t, 0, (a-m)%13)
	}
}

func TestDiv(t *testing.T) {
	require.Equal(t, 3, DivCeil(7, 3))
	require.Equal(t, 2, DivCeil(6, 3))
	require.Equal(t, 0, DivCeil(0, 3))
	require.Equal(t, uint(2), DivCeil(uint(5), uint(3)))
}
