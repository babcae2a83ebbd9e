package tokenfactory

import (
	"testing"

	"github.com/nspcc-dev/tokenfactory-contract/contracts/tokenfactory/tokenfactoryconst"
	"github.com/stretchr/testify/require"
)

func TestAddLimited(t *testing.T) {
	const limit = 100

	require.Equal(t, 30, addLimited(10, 20, limit, "minted"))
	require.Equal(t, limit, addLimited(60, 40, limit, "minted"))
	require.Equal(t, limit, addLimited(limit, 0, limit, "burned"))

	require.PanicsWithValue(t, tokenfactoryconst.ErrOverflow+": minted total", func() {
		addLimited(60, 41, limit, "minted")
	})
	require.PanicsWithValue(t, tokenfactoryconst.ErrOverflow+": burned total", func() {
		addLimited(limit, 1, limit, "burned")
	})
}
