package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Cyclic groups for the simple cases.
func cyclicFixtures() (trivial, c2, c4 Group) {
	sigma := Perm{1, 2, 3, 0}
	trivial = New("1", `\{1\}`, Identity())
	c2 = New("C2", `C_2`, Identity(), sigma.Pow(2))
	c4 = New("C4", `C_4`, Identity(), sigma, sigma.Pow(2), sigma.Pow(3))
	return trivial, c2, c4
}

func TestCosets(t *testing.T) {
	trivial, c2, c4 := cyclicFixtures()

	tests := []struct {
		name      string
		g, h      Group
		wantCount int
		wantSize  int
	}{
		{name: "trivial subgroup gives singleton cosets", g: c4, h: trivial, wantCount: 4, wantSize: 1},
		{name: "index two subgroup gives two cosets", g: c4, h: c2, wantCount: 2, wantSize: 2},
		{name: "full group gives one coset", g: c4, h: c4, wantCount: 1, wantSize: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cosets := Cosets(tt.g, tt.h)
			require.Len(t, cosets, tt.wantCount)
			for _, c := range cosets {
				assert.Len(t, c, tt.wantSize)
			}
		})
	}
}

func TestCosetsAreStable(t *testing.T) {
	_, _, c4 := cyclicFixtures()
	d4 := dihedralFixture()

	first := Cosets(d4, c4)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Cosets(d4, c4), "coset order must be reproducible")
	}
}

func TestOrbits(t *testing.T) {
	trivial, c2, c4 := cyclicFixtures()

	// C2 acting on the four singleton cosets of 1 \ C4 pairs them up.
	cosets := Cosets(c4, trivial)
	orbits := Orbits(cosets, c2)
	require.Len(t, orbits, 2)
	for _, o := range orbits {
		assert.Len(t, o, 2)
	}

	// The full group acts transitively.
	orbits = Orbits(cosets, c4)
	require.Len(t, orbits, 1)
	assert.Len(t, orbits[0], 4)
}

func dihedralFixture() Group {
	sigma := Perm{1, 2, 3, 0}
	tau := Perm{1, 0, 3, 2}
	return New("D4", `D_4`,
		Identity(), sigma, sigma.Pow(2), sigma.Pow(3),
		tau, sigma.Mul(tau), sigma.Pow(2).Mul(tau), sigma.Pow(3).Mul(tau))
}

func TestDihedralOrbitStructure(t *testing.T) {
	d4 := dihedralFixture()
	sigma := Perm{1, 2, 3, 0}
	tau := Perm{1, 0, 3, 2}

	require.True(t, d4.IsClosed())
	require.Equal(t, 8, d4.Order())

	l1 := New("<tau>", `\langle \tau \rangle`, Identity(), tau)
	l := New("<sigma^2>", `\langle \sigma^2 \rangle`, Identity(), sigma.Pow(2))
	k := New("<sigma>", `\langle \sigma \rangle`, Identity(), sigma, sigma.Pow(2), sigma.Pow(3))

	// A prime with cyclic decomposition <sigma> in the quartic field fixed
	// by <tau>: one orbit of size four.
	cosets := Cosets(d4, l1)
	require.Len(t, cosets, 4)
	orbits := Orbits(cosets, k)
	require.Len(t, orbits, 1)
	assert.Len(t, orbits[0], 4)

	// Refining by the inertia subgroup <sigma^2> splits it into two
	// suborbits of size two: residue degree 2, ramification index 2.
	sub := Orbits(orbits[0], l)
	require.Len(t, sub, 2)
	for _, s := range sub {
		assert.Len(t, s, 2)
	}
}

func TestGroupCentralizer(t *testing.T) {
	d4 := dihedralFixture()
	sigma := Perm{1, 2, 3, 0}

	tests := []struct {
		name string
		p    Perm
		want int
	}{
		{name: "identity commutes with everything", p: Identity(), want: 8},
		{name: "central element commutes with everything", p: sigma.Pow(2), want: 8},
		{name: "four cycle commutes with its own powers", p: sigma, want: 4},
		{name: "reflection has centralizer of order four", p: Perm{1, 0, 3, 2}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d4.Centralizer(tt.p))
		})
	}
}
