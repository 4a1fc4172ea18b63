package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/peerchat-cli/internal/domain"
)

func TestSessionSelectTargetIsIdempotent(t *testing.T) {
	t.Parallel()

	session := NewSession()
	assert.True(t, session.Target().IsNone())

	assert.True(t, session.SelectTarget(domain.TargetPeer, "bob@10.0.0.5:5000", "bob@10.0.0.5:5001"))
	assert.False(t, session.SelectTarget(domain.TargetPeer, "bob@10.0.0.5:5000", "bob@10.0.0.5:5001"))
	assert.True(t, session.SelectTarget(domain.TargetChannel, "general", ""))
	assert.True(t, session.SelectTarget(domain.TargetNone, "ignored", "ignored"))

	assert.Equal(t, domain.NoTarget(), session.Target())
}
