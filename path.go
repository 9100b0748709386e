package quicwire

import "net"

// A PathAddr is one side's path state: two address slots with an active
// index, the 8-byte probe entropy, and the pending flag of an in-flight
// PATH_CHALLENGE.
type PathAddr struct {
	Entropy [8]byte
	Pending bool

	// Active selects the address slot in use; the other slot holds the
	// address being validated.
	Active int
	Addr   [2]net.Addr
}

// ActiveAddr returns the address currently in use.
func (p *PathAddr) ActiveAddr() net.Addr {
	return p.Addr[p.Active]
}

// AltAddr returns the address under validation.
func (p *PathAddr) AltAddr() net.Addr {
	return p.Addr[1-p.Active]
}

// clearAlt zeroes the inactive slot once validation finishes.
func (p *PathAddr) clearAlt() {
	p.Addr[1-p.Active] = nil
}
