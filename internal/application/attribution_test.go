package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/peerchat-cli/internal/domain"
)

type staticResolver map[string]string

func (r staticResolver) Resolve(address string) (string, bool) {
	username, ok := r[address]
	return username, ok
}

func TestAttribute(t *testing.T) {
	t.Parallel()

	directory := staticResolver{
		"10.0.0.2:5001": "alice",
		"10.0.0.3:5001": "carol",
	}

	tests := []struct {
		name   string
		record domain.InboundMessage
		want   domain.AttributedMessage
	}{
		{
			name:   "directory hit strips own tag",
			record: domain.InboundMessage{Text: "[alice] hello", SenderAddress: "10.0.0.2:5001"},
			want:   domain.AttributedMessage{Sender: "alice", Content: "hello"},
		},
		{
			name:   "directory wins over a forged tag",
			record: domain.InboundMessage{Text: "[mallory] hi", SenderAddress: "10.0.0.2:5001"},
			want:   domain.AttributedMessage{Sender: "alice", Content: "hi"},
		},
		{
			name:   "broadcast marker wins over directory",
			record: domain.InboundMessage{Text: domain.BroadcastMarker + " [bob] hi all", SenderAddress: "10.0.0.3:5001"},
			want:   domain.AttributedMessage{Sender: "bob", Content: "hi all", IsBroadcast: true},
		},
		{
			name:   "broadcast without tag keeps raw address",
			record: domain.InboundMessage{Text: domain.BroadcastMarker + " hello", SenderAddress: "10.0.0.7:6000"},
			want:   domain.AttributedMessage{Sender: "10.0.0.7:6000", Content: "hello", IsBroadcast: true},
		},
		{
			name:   "unknown address uses first non-address tag",
			record: domain.InboundMessage{Text: "[10.0.0.9:5001] [dave] hey", SenderAddress: "10.0.0.7:6000"},
			want:   domain.AttributedMessage{Sender: "dave", Content: "hey"},
		},
		// Deliberately not a sender_addr fallback: the first tag is kept as
		// the sender so a relayed message shows the address its author wrote
		// rather than the relay's address.
		{
			name:   "only address-shaped tags still names the sender from the first tag",
			record: domain.InboundMessage{Text: "[10.0.0.9:5001] hey", SenderAddress: "10.0.0.7:6000"},
			want:   domain.AttributedMessage{Sender: "10.0.0.9:5001", Content: "hey"},
		},
		{
			name:   "no tags falls back to raw sender and text",
			record: domain.InboundMessage{Text: "plain text ", SenderAddress: "10.0.0.7:6000"},
			want:   domain.AttributedMessage{Sender: "10.0.0.7:6000", Content: "plain text "},
		},
		{
			name:   "empty record",
			record: domain.InboundMessage{},
			want:   domain.AttributedMessage{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Attribute(tt.record, directory))
		})
	}
}

func TestAttributeWithoutResolver(t *testing.T) {
	t.Parallel()

	got := Attribute(domain.InboundMessage{Text: "[alice] hello", SenderAddress: "10.0.0.2:5001"}, nil)
	assert.Equal(t, domain.AttributedMessage{Sender: "alice", Content: "hello"}, got)
}

func TestAttributeBroadcastNeverFromOtherStages(t *testing.T) {
	t.Parallel()

	records := []domain.InboundMessage{
		{Text: "[alice] " + domain.BroadcastMarker + " hi", SenderAddress: "10.0.0.2:5001"},
		{Text: "Broadcast: [bob] hi", SenderAddress: "10.0.0.7:6000"},
		{Text: "hello", SenderAddress: "10.0.0.7:6000"},
	}

	for _, record := range records {
		assert.False(t, Attribute(record, staticResolver{"10.0.0.2:5001": "alice"}).IsBroadcast, record.Text)
	}
}

func TestAttributeAgainstRebuiltDirectory(t *testing.T) {
	t.Parallel()

	directory := NewAddressDirectory()
	directory.Rebuild([]domain.PeerRecord{{Username: "alice", IP: "10.0.0.2", SendPort: 5001}})

	got := Attribute(domain.InboundMessage{Text: "[alice] hello", SenderAddress: "10.0.0.2:5001"}, directory)
	assert.Equal(t, "alice", got.Sender)
	assert.Equal(t, "hello", got.Content)
	assert.False(t, got.IsBroadcast)
}
