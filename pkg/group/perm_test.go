package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermMul(t *testing.T) {
	sigma := Perm{1, 2, 3, 0}
	tau := Perm{1, 0, 3, 2}

	tests := []struct {
		name string
		a, b Perm
		want Perm
	}{
		{
			name: "identity is neutral on the left",
			a:    Identity(),
			b:    sigma,
			want: sigma,
		},
		{
			name: "identity is neutral on the right",
			a:    sigma,
			b:    Identity(),
			want: sigma,
		},
		{
			name: "sigma tau is the transposition (0 2)",
			a:    sigma,
			b:    tau,
			want: Perm{2, 1, 0, 3},
		},
		{
			name: "sigma squared is the central double transposition",
			a:    sigma,
			b:    sigma,
			want: Perm{2, 3, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Mul(tt.b))
		})
	}
}

func TestPermDihedralRelations(t *testing.T) {
	sigma := Perm{1, 2, 3, 0}
	tau := Perm{1, 0, 3, 2}

	// The defining relations of D4: tau^2 = 1, sigma^4 = 1,
	// tau sigma tau = sigma^3.
	assert.Equal(t, Identity(), tau.Pow(2))
	assert.Equal(t, Identity(), sigma.Pow(4))
	assert.Equal(t, sigma.Pow(3), tau.Mul(sigma).Mul(tau))
}

func TestPermPowAndInverse(t *testing.T) {
	sigma := Perm{1, 2, 3, 0}

	tests := []struct {
		name string
		p    Perm
		n    int
		want Perm
	}{
		{name: "zeroth power is identity", p: sigma, n: 0, want: Identity()},
		{name: "first power is the element", p: sigma, n: 1, want: sigma},
		{name: "negative power uses the inverse", p: sigma, n: -1, want: sigma.Inverse()},
		{name: "order wraps around", p: sigma, n: 5, want: sigma},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Pow(tt.n))
		})
	}

	for _, p := range []Perm{sigma, {1, 0, 3, 2}, {2, 1, 0, 3}, Identity()} {
		assert.Equal(t, Identity(), p.Mul(p.Inverse()), "p * p^-1 = 1 for %v", p)
	}
}

func TestPermOrder(t *testing.T) {
	tests := []struct {
		name string
		p    Perm
		want int
	}{
		{name: "identity", p: Identity(), want: 1},
		{name: "four cycle", p: Perm{1, 2, 3, 0}, want: 4},
		{name: "double transposition", p: Perm{1, 0, 3, 2}, want: 2},
		{name: "transposition", p: Perm{2, 1, 0, 3}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Order())
		})
	}
}

func TestPermCycleCount(t *testing.T) {
	tests := []struct {
		name string
		p    Perm
		want int
	}{
		{name: "identity has four fixed points", p: Identity(), want: 4},
		{name: "four cycle is a single cycle", p: Perm{1, 2, 3, 0}, want: 1},
		{name: "double transposition has two cycles", p: Perm{1, 0, 3, 2}, want: 2},
		{name: "transposition keeps two fixed points", p: Perm{2, 1, 0, 3}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.CycleCount())
		})
	}
}
