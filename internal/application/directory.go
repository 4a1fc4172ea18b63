package application

import (
	"sync/atomic"

	"github.com/bnema/peerchat-cli/internal/domain"
)

// AddressResolver maps a receive-side network address to a username.
type AddressResolver interface {
	Resolve(address string) (string, bool)
}

// AddressDirectory maps "ip:sendPort" to a username. Every Rebuild swaps in a
// freshly built map, so concurrent readers always see one complete snapshot.
type AddressDirectory struct {
	entries atomic.Pointer[map[string]string]
}

var _ AddressResolver = (*AddressDirectory)(nil)

func NewAddressDirectory() *AddressDirectory {
	d := &AddressDirectory{}
	empty := map[string]string{}
	d.entries.Store(&empty)
	return d
}

// Rebuild replaces the whole mapping. Later records win on duplicate addresses.
func (d *AddressDirectory) Rebuild(peers []domain.PeerRecord) {
	next := make(map[string]string, len(peers))
	for _, peer := range peers {
		next[peer.Address()] = peer.Username
	}
	d.entries.Store(&next)
}

func (d *AddressDirectory) Resolve(address string) (string, bool) {
	username, ok := d.snapshot()[address]
	return username, ok
}

func (d *AddressDirectory) Len() int {
	return len(d.snapshot())
}

// Snapshot returns a copy of the current mapping.
func (d *AddressDirectory) Snapshot() map[string]string {
	current := d.snapshot()
	out := make(map[string]string, len(current))
	for address, username := range current {
		out[address] = username
	}
	return out
}

func (d *AddressDirectory) snapshot() map[string]string {
	if current := d.entries.Load(); current != nil {
		return *current
	}
	return nil
}

// snapshotResolver resolves against a fixed copy of the directory.
type snapshotResolver map[string]string

func (r snapshotResolver) Resolve(address string) (string, bool) {
	username, ok := r[address]
	return username, ok
}
