package domain

import (
	"fmt"
	"strings"
)

// PeerRecord is one entry of the tracker's peer list. SendPort is the port the
// peer accepts P2P deliveries on; its local HTTP interface listens one lower.
type PeerRecord struct {
	Username string
	IP       string
	SendPort int
}

// Address is the receive-side key used by the address directory.
func (p PeerRecord) Address() string {
	return fmt.Sprintf("%s:%d", p.IP, p.SendPort)
}

func (p PeerRecord) HTTPPort() int {
	return p.SendPort - 1
}

// RoutingID is the identifier the transport expects for direct sends.
func (p PeerRecord) RoutingID() string {
	return fmt.Sprintf("%s@%s:%d", p.Username, p.IP, p.SendPort)
}

// DisplayID is the human-facing identifier, using the HTTP port.
func (p PeerRecord) DisplayID() string {
	return fmt.Sprintf("%s@%s:%d", p.Username, p.IP, p.HTTPPort())
}

// IdentityPart returns the text before "@" of a peer id.
func IdentityPart(peerID string) string {
	name, _, _ := strings.Cut(peerID, "@")
	return name
}
