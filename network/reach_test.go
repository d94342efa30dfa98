package network_test

import (
	"os"
	"testing"

	"github.com/katalvlaran/valvesched/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepths_Example(t *testing.T) {
	f, err := os.Open("testdata/example.txt")
	require.NoError(t, err)
	defer f.Close()
	n, err := network.Parse(f, "AA")
	require.NoError(t, err)

	// AA BB CC DD EE FF GG HH II JJ
	assert.Equal(t, []int{0, 1, 2, 1, 2, 3, 4, 5, 1, 2}, n.Depths())
	assert.Empty(t, n.UnreachableFlow())
}

func TestDepths_DirectedAndIsolated(t *testing.T) {
	n, err := network.NewNetwork([]network.Record{
		{Name: "S", Rate: 0, Tunnels: []string{"A"}},
		{Name: "A", Rate: 4},
		{Name: "B", Rate: 7, Tunnels: []string{"S"}},
		{Name: "C", Rate: 0},
		{Name: "D", Rate: 2, Tunnels: []string{"D"}},
	}, "S")
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, network.Unreachable, network.Unreachable, network.Unreachable}, n.Depths())
	assert.Equal(t, []string{"B", "D"}, n.UnreachableFlow())
}

func TestDepths_Nil(t *testing.T) {
	var n *network.Network
	assert.Nil(t, n.Depths())
	assert.Empty(t, n.UnreachableFlow())
}
