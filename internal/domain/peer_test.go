package domain

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeerRecordDerivedIDs(t *testing.T) {
	t.Parallel()

	peer := PeerRecord{Username: "bob", IP: "10.0.0.5", SendPort: 5001}

	assert.Equal(t, "10.0.0.5:5001", peer.Address())
	assert.Equal(t, 5000, peer.HTTPPort())
	assert.Equal(t, "bob@10.0.0.5:5001", peer.RoutingID())
	assert.Equal(t, "bob@10.0.0.5:5000", peer.DisplayID())
}

func TestIdentityPart(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bob", IdentityPart("bob@10.0.0.5:5000"))
	assert.Equal(t, "general", IdentityPart("general"))
	assert.Equal(t, "", IdentityPart("@10.0.0.5:5000"))
}

func TestChannelHasMember(t *testing.T) {
	t.Parallel()

	channel := Channel{Name: "general", Members: []string{"alice", "bob"}}
	assert.True(t, channel.HasMember("bob"))
	assert.False(t, channel.HasMember("carol"))
	assert.False(t, Channel{}.HasMember("alice"))
}

func TestServiceErrorUnwrapsToKind(t *testing.T) {
	t.Parallel()

	err := error(&ServiceError{
		Kind:       ErrServiceUnavailable,
		Endpoint:   "/get-list",
		StatusCode: http.StatusServiceUnavailable,
		Message:    "Tracker unreachable",
	})

	assert.True(t, errors.Is(err, ErrServiceUnavailable))
	assert.False(t, errors.Is(err, ErrRequestRejected))
	assert.Equal(t, "directory service unavailable /get-list: status 503: Tracker unreachable", err.Error())

	var serviceErr *ServiceError
	assert.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, "Tracker unreachable", serviceErr.Message)
}

func TestProfileRegistered(t *testing.T) {
	t.Parallel()

	assert.False(t, Profile{}.Registered())
	assert.False(t, Profile{Username: "alice"}.Registered())
	assert.True(t, Profile{Username: "alice", PeerID: "alice@10.0.0.2:5001"}.Registered())
}
