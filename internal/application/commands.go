package application

import (
	"github.com/bnema/peerchat-cli/internal/domain"
)

// SendCommand is a one-shot send that selects its own target.
// TargetID is ignored for broadcast; for peers it may be a username, a
// display id or a routing id.
type SendCommand struct {
	Mode     domain.TargetMode
	TargetID string
	Message  string
}
