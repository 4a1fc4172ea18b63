package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/peerchat-cli/internal/domain"
	"github.com/bnema/peerchat-cli/internal/ports"
)

var ErrUsernameRequired = errors.New("username is required")

type ChatService struct {
	tracker   ports.TrackerDirectory
	transport ports.MessageTransport
	profiles  ports.ProfileRepository
	clock     ports.Clock
	session   *Session
	logger    zerolog.Logger
}

func NewChatService(tracker ports.TrackerDirectory, transport ports.MessageTransport, profiles ports.ProfileRepository, clock ports.Clock) *ChatService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &ChatService{
		tracker:   tracker,
		transport: transport,
		profiles:  profiles,
		clock:     clock,
		session:   NewSession(),
		logger:    zerolog.Nop(),
	}
}

func (s *ChatService) WithLogger(logger zerolog.Logger) *ChatService {
	s.logger = logger
	return s
}

func (s *ChatService) Session() *Session {
	return s.session
}

func (s *ChatService) Now() time.Time {
	return s.clock.Now()
}

// LoadProfile restores the stored identity into the session. A missing
// profile is reported as ErrNotRegistered.
func (s *ChatService) LoadProfile(ctx context.Context) (domain.Profile, error) {
	profile, err := s.profiles.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return domain.Profile{}, fmt.Errorf("load profile: %w", domain.ErrNotRegistered)
		}
		return domain.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	if !profile.Registered() {
		return domain.Profile{}, fmt.Errorf("load profile: %w", domain.ErrNotRegistered)
	}

	s.session.SetProfile(profile)
	return profile, nil
}

func (s *ChatService) Register(ctx context.Context, username string) (domain.Profile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return domain.Profile{}, ErrUsernameRequired
	}

	peerID, err := s.tracker.RegisterPeer(ctx, username)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("register peer: %w", err)
	}

	profile := domain.Profile{
		Username:     username,
		PeerID:       peerID,
		RegisteredAt: s.clock.Now().UTC(),
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		return domain.Profile{}, fmt.Errorf("save profile: %w", err)
	}

	s.session.SetProfile(profile)
	s.logger.Info().Str("username", username).Str("peer_id", peerID).Msg("registered peer")

	return profile, nil
}

// Refresh fetches peers and channels. The directory is rebuilt only when the
// peer list was fetched; otherwise the previous snapshot stays in use. The
// view is returned even on partial failure.
func (s *ChatService) Refresh(ctx context.Context) (DirectoryView, error) {
	var view DirectoryView
	var errs []error
	identity := s.session.Identity()

	peers, err := s.tracker.ListPeers(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("list peers: %w", err))
	} else {
		directory := s.session.Directory()
		directory.Rebuild(peers)
		view.Peers = peerEntries(peers, identity)
		s.logger.Debug().Int("count", directory.Len()).Msg("directory rebuilt")
	}

	channels, err := s.tracker.ListChannels(ctx)
	if err != nil {
		errs = append(errs, fmt.Errorf("list channels: %w", err))
	} else {
		view.Channels = channelEntries(channels, identity)
	}

	view.Notice = domain.Notice{
		Level: domain.NoticeInfo,
		Text:  "Peer and Channel lists refreshed.",
		At:    s.clock.Now(),
	}

	return view, errors.Join(errs...)
}

func peerEntries(peers []domain.PeerRecord, identity string) []PeerEntry {
	entries := make([]PeerEntry, 0, len(peers))
	for _, peer := range peers {
		if identity != "" && peer.Username == identity {
			continue
		}
		entries = append(entries, PeerEntry{
			Username:  peer.Username,
			DisplayID: peer.DisplayID(),
			RoutingID: peer.RoutingID(),
		})
	}
	return entries
}

func channelEntries(channels []domain.Channel, identity string) []ChannelEntry {
	entries := make([]ChannelEntry, 0, len(channels))
	for _, channel := range channels {
		entries = append(entries, ChannelEntry{
			Name:    channel.Name,
			Members: len(channel.Members),
			Joined:  identity != "" && channel.HasMember(identity),
		})
	}
	return entries
}

// Send routes message to the session's active target.
func (s *ChatService) Send(ctx context.Context, message string) (SendResult, error) {
	request, err := Route(s.session.Target(), s.session.Identity(), message)
	if err != nil {
		return SendResult{}, err
	}

	receipt, err := s.transport.Send(ctx, request)
	if err != nil {
		return SendResult{}, fmt.Errorf("send to %s: %w", request.DisplayName, err)
	}

	s.logger.Debug().
		Str("endpoint", string(request.Endpoint)).
		Str("target_type", string(request.Mode)).
		Int("sent_to", receipt.SentTo).
		Int("failed", receipt.Failed).
		Msg("message sent")

	now := s.clock.Now()
	return SendResult{
		Request: request,
		Receipt: receipt,
		Echo: domain.AttributedMessage{
			Sender:  s.session.Identity(),
			Content: strings.TrimSpace(message),
		},
		Notice: sentNotice(request, receipt, now),
	}, nil
}

// SendTo selects the command's target and sends through it. A blank message
// is rejected before any tracker call.
func (s *ChatService) SendTo(ctx context.Context, cmd SendCommand) (SendResult, error) {
	if !cmd.Mode.Valid() || cmd.Mode == domain.TargetNone {
		return SendResult{}, fmt.Errorf("%w: unsupported mode %q", domain.ErrInvalidTarget, cmd.Mode)
	}
	if strings.TrimSpace(cmd.Message) == "" {
		return SendResult{}, fmt.Errorf("%w: %w", domain.ErrInvalidTarget, domain.ErrEmptyMessage)
	}

	switch cmd.Mode {
	case domain.TargetBroadcast:
		s.session.SelectTarget(domain.TargetBroadcast, "", "")
	case domain.TargetChannel:
		name := strings.TrimPrefix(strings.TrimSpace(cmd.TargetID), "#")
		if name == "" {
			return SendResult{}, fmt.Errorf("%w: channel name is required", domain.ErrInvalidTarget)
		}
		s.session.SelectTarget(domain.TargetChannel, name, "")
	case domain.TargetPeer:
		entry, err := s.resolvePeer(ctx, cmd.TargetID)
		if err != nil {
			return SendResult{}, err
		}
		s.session.SelectTarget(domain.TargetPeer, entry.DisplayID, entry.RoutingID)
	}

	return s.Send(ctx, cmd.Message)
}

// resolvePeer matches id against the tracker's peer list by username, display
// id or routing id. An unknown id, or any id while the tracker cannot be
// reached, is used as-is for both identifiers.
func (s *ChatService) resolvePeer(ctx context.Context, id string) (PeerEntry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PeerEntry{}, fmt.Errorf("%w: peer id is required", domain.ErrInvalidTarget)
	}
	asGiven := PeerEntry{Username: domain.IdentityPart(id), DisplayID: id, RoutingID: id}

	peers, err := s.tracker.ListPeers(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return PeerEntry{}, ctxErr
		}
		s.logger.Warn().Err(err).Str("peer", id).Msg("peer list unavailable, sending to id as given")
		return asGiven, nil
	}
	s.session.Directory().Rebuild(peers)

	for _, peer := range peers {
		if peer.Username == id || peer.DisplayID() == id || peer.RoutingID() == id {
			return PeerEntry{Username: peer.Username, DisplayID: peer.DisplayID(), RoutingID: peer.RoutingID()}, nil
		}
	}

	s.logger.Warn().Str("peer", id).Msg("peer not in directory, sending to id as given")
	return asGiven, nil
}

// Poll fetches pending inbound messages and attributes them against the
// current directory snapshot, keeping server order.
func (s *ChatService) Poll(ctx context.Context) ([]domain.AttributedMessage, error) {
	inbound, err := s.transport.PollMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("poll messages: %w", err)
	}
	if len(inbound) == 0 {
		return nil, nil
	}

	// One snapshot per batch so a concurrent refresh cannot split it.
	snapshot := snapshotResolver(s.session.Directory().Snapshot())
	messages := make([]domain.AttributedMessage, 0, len(inbound))
	for _, record := range inbound {
		messages = append(messages, Attribute(record, snapshot))
	}

	return messages, nil
}

func (s *ChatService) CreateChannel(ctx context.Context, name string) (domain.Notice, error) {
	name, err := s.channelRequest(name)
	if err != nil {
		return domain.Notice{}, err
	}

	if err := s.tracker.CreateChannel(ctx, name, s.session.Identity()); err != nil {
		return domain.Notice{}, fmt.Errorf("create channel %s: %w", name, err)
	}

	return domain.Notice{
		Level: domain.NoticeSuccess,
		Text:  fmt.Sprintf("Channel #%s created successfully!", name),
		At:    s.clock.Now(),
	}, nil
}

// JoinChannel joins name and makes it the active target.
func (s *ChatService) JoinChannel(ctx context.Context, name string) (domain.Notice, error) {
	name, err := s.channelRequest(name)
	if err != nil {
		return domain.Notice{}, err
	}

	if err := s.tracker.JoinChannel(ctx, name, s.session.Identity()); err != nil {
		return domain.Notice{}, fmt.Errorf("join channel %s: %w", name, err)
	}

	s.session.SelectTarget(domain.TargetChannel, name, "")

	return domain.Notice{
		Level: domain.NoticeSuccess,
		Text:  fmt.Sprintf("Joined channel #%s.", name),
		At:    s.clock.Now(),
	}, nil
}

func (s *ChatService) channelRequest(name string) (string, error) {
	name = strings.TrimPrefix(strings.TrimSpace(name), "#")
	if name == "" {
		return "", errors.New("channel name is required")
	}
	if s.session.Identity() == "" {
		return "", domain.ErrNotRegistered
	}
	return name, nil
}
