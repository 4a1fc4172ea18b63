package domain

import "time"

// Profile is the locally registered identity.
type Profile struct {
	Username     string
	PeerID       string
	RegisteredAt time.Time
}

func (p Profile) Registered() bool {
	return p.Username != "" && p.PeerID != ""
}
