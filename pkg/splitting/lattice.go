package splitting

import "github.com/mesh-intelligence/quartic/pkg/group"

// Generators of D4 acting on the four roots of the quartic: sigma rotates,
// tau reflects. All subgroup tables below are built from these two.
var (
	sigma = group.Perm{1, 2, 3, 0}
	tau   = group.Perm{1, 0, 3, 2}
)

// The subgroup lattice of D4, one entry per conjugacy class, named by the
// intermediate field it fixes in the diagram Q ⊂ L1, L2, L ⊂ K1, K2, K ⊂ M.
// The conjugates <sigma^2 tau> and <sigma^3 tau> of GalL1 and GalL2 carry no
// extra information and are omitted, as in the published table.
var (
	// D4 is the full Galois group Gal(M/Q), order 8.
	D4 = group.New("D4", `D_4`,
		group.Identity(), sigma, sigma.Pow(2), sigma.Pow(3),
		tau, sigma.Mul(tau), sigma.Pow(2).Mul(tau), sigma.Pow(3).Mul(tau))

	// GalM is the trivial group fixing the Galois closure M itself.
	GalM = group.New("1", `\{1\}`, group.Identity())

	// GalL1 fixes the non-Galois quartic L1.
	GalL1 = group.New("<tau>", `\langle \tau \rangle`,
		group.Identity(), tau)

	// GalL2 fixes the other non-Galois quartic L2.
	GalL2 = group.New("<sigma tau>", `\langle \sigma \tau \rangle`,
		group.Identity(), sigma.Mul(tau))

	// GalL fixes the Galois quartic L (the center of D4).
	GalL = group.New("<sigma^2>", `\langle \sigma^2 \rangle`,
		group.Identity(), sigma.Pow(2))

	// GalK1 fixes the quadratic K1.
	GalK1 = group.New("<tau, sigma^2>", `\langle \tau, \sigma^2 \rangle`,
		group.Identity(), tau, sigma.Pow(2), sigma.Pow(2).Mul(tau))

	// GalK2 fixes the quadratic K2.
	GalK2 = group.New("<sigma tau, sigma^2>", `\langle \sigma \tau, \sigma^2 \rangle`,
		group.Identity(), sigma.Mul(tau), sigma.Pow(2), sigma.Pow(3).Mul(tau))

	// GalK fixes the cyclic quadratic K.
	GalK = group.New("<sigma>", `\langle \sigma \rangle`,
		group.Identity(), sigma, sigma.Pow(2), sigma.Pow(3))
)

// Field is one column of the published table: an intermediate field of the
// D4 diagram together with the subgroup fixing it.
type Field struct {
	Name string      // plain column label, e.g. "K1"
	Lx   string      // LaTeX column label, e.g. "K_1"
	Gal  group.Group // Gal(M/field)
}

// Degree returns the field degree over Q.
func (f Field) Degree() int {
	return D4.Order() / f.Gal.Order()
}

// fields lists the table columns in published order.
var fields = []Field{
	{Name: "M", Lx: "M", Gal: GalM},
	{Name: "L1", Lx: "L_1", Gal: GalL1},
	{Name: "K1", Lx: "K_1", Gal: GalK1},
	{Name: "L2", Lx: "L_2", Gal: GalL2},
	{Name: "K2", Lx: "K_2", Gal: GalK2},
	{Name: "L", Lx: "L", Gal: GalL},
	{Name: "K", Lx: "K", Gal: GalK},
}

// Fields returns the intermediate-field columns in published order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}
