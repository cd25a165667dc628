package group

import "sort"

// Coset is a right coset H·g inside a larger group, canonicalized to
// lexicographic element order so equal cosets compare equal by key.
type Coset []Perm

// key encodes the coset's sorted elements as a byte string usable as a map key.
func (c Coset) key() string {
	buf := make([]byte, 0, len(c)*Degree)
	for _, p := range c {
		for i := 0; i < Degree; i++ {
			buf = append(buf, byte('0'+p[i]))
		}
	}
	return string(buf)
}

// translate returns the canonicalized right translate c·x.
func (c Coset) translate(x Perm) Coset {
	t := make(Coset, len(c))
	for i, p := range c {
		t[i] = p.Mul(x)
	}
	sortPerms(t)
	return t
}

// Cosets returns the right cosets H \ G for a subgroup h of g, in a stable
// canonical order.
func Cosets(g, h Group) []Coset {
	seen := make(map[string]bool)
	var out []Coset
	for _, x := range g.Elements {
		c := make(Coset, 0, h.Order())
		for _, e := range h.Elements {
			c = append(c, e.Mul(x))
		}
		sortPerms(c)
		if k := c.key(); !seen[k] {
			seen[k] = true
			out = append(out, c)
		}
	}
	sortCosets(out)
	return out
}

// Orbit is a set of cosets closed under the right action of some group,
// canonicalized like Coset.
type Orbit []Coset

// key concatenates the member coset keys. Orbit members are kept sorted, so
// equal orbits share a key.
func (o Orbit) key() string {
	var buf []byte
	for _, c := range o {
		buf = append(buf, c.key()...)
	}
	return string(buf)
}

// Orbits partitions cosets into orbits under right translation by act.
// The coset list must be closed under the action; this is guaranteed when it
// came from Cosets on a subgroup of act's parent.
func Orbits(cosets []Coset, act Group) []Orbit {
	seen := make(map[string]bool)
	var out []Orbit
	for _, c := range cosets {
		members := make(map[string]Coset)
		for _, x := range act.Elements {
			t := c.translate(x)
			members[t.key()] = t
		}
		orb := make(Orbit, 0, len(members))
		for _, m := range members {
			orb = append(orb, m)
		}
		sortCosets(orb)
		if k := orb.key(); !seen[k] {
			seen[k] = true
			out = append(out, orb)
		}
	}
	sortOrbits(out)
	return out
}

func sortCosets(cs []Coset) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].key() < cs[j].key() })
}

func sortOrbits(os []Orbit) {
	sort.Slice(os, func(i, j int) bool { return os[i].key() < os[j].key() })
}
