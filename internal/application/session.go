package application

import (
	"sync"

	"github.com/bnema/peerchat-cli/internal/domain"
)

// Session holds the per-process chat state: the local identity, the active
// conversation target and the address directory.
type Session struct {
	mu        sync.RWMutex
	profile   domain.Profile
	target    domain.ConversationTarget
	directory *AddressDirectory
}

func NewSession() *Session {
	return &Session{
		target:    domain.NoTarget(),
		directory: NewAddressDirectory(),
	}
}

func (s *Session) Profile() domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *Session) SetProfile(profile domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = profile
}

func (s *Session) Identity() string {
	return s.Profile().Username
}

func (s *Session) Target() domain.ConversationTarget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target
}

// SelectTarget changes the active target. It returns false when the request
// matches the current target, in which case nothing changes.
func (s *Session) SelectTarget(mode domain.TargetMode, displayID, routingID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target.Select(mode, displayID, routingID)
}

func (s *Session) Directory() *AddressDirectory {
	return s.directory
}
