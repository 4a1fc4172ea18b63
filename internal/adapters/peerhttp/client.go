package peerhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/peerchat-cli/internal/domain"
	"github.com/bnema/peerchat-cli/internal/ports"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 30 * time.Second
	requestIDHeader       = "X-Request-ID"
)

const (
	pathListPeers     = "/get-list"
	pathListChannels  = "/get-channels"
	pathRegisterPeer  = "/register-peer"
	pathCreateChannel = "/create-channel"
	pathJoinChannel   = "/join-channel"
	pathPollMessages  = "/check-new-messages"
)

// Client talks JSON to the local peer web application, which fronts both the
// tracker and the P2P transport.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	UserAgent      string
	Logger         zerolog.Logger
}

var (
	_ ports.TrackerDirectory = Client{}
	_ ports.MessageTransport = Client{}
)

type peerPayload struct {
	Username string `json:"username"`
	IP       string `json:"ip"`
	Port     int    `json:"port"`
}

type peerListResponse struct {
	Peers []peerPayload `json:"peers"`
}

type channelPayload struct {
	Members []string `json:"members"`
}

type channelListResponse struct {
	Channels map[string]channelPayload `json:"channels"`
}

type registerRequest struct {
	Username string `json:"username"`
}

type registerResponse struct {
	PeerID string `json:"peer_id"`
}

type createChannelRequest struct {
	ChannelName string `json:"channel_name"`
	Owner       string `json:"owner"`
}

type joinChannelRequest struct {
	ChannelName string `json:"channel_name"`
	Username    string `json:"username"`
}

type sendResponse struct {
	SentTo int `json:"sent_to"`
	Failed int `json:"failed"`
}

type inboundPayload struct {
	Message    string `json:"message"`
	SenderAddr string `json:"sender_addr"`
}

type pollResponse struct {
	Messages []inboundPayload `json:"messages"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c Client) ListPeers(ctx context.Context) ([]domain.PeerRecord, error) {
	var payload peerListResponse
	if err := c.do(ctx, http.MethodGet, pathListPeers, nil, &payload); err != nil {
		return nil, err
	}

	peers := make([]domain.PeerRecord, 0, len(payload.Peers))
	for _, peer := range payload.Peers {
		peers = append(peers, domain.PeerRecord{
			Username: peer.Username,
			IP:       peer.IP,
			SendPort: peer.Port,
		})
	}
	return peers, nil
}

// ListChannels returns channels sorted by name.
func (c Client) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	var payload channelListResponse
	if err := c.do(ctx, http.MethodGet, pathListChannels, nil, &payload); err != nil {
		return nil, err
	}

	channels := make([]domain.Channel, 0, len(payload.Channels))
	for name, channel := range payload.Channels {
		channels = append(channels, domain.Channel{Name: name, Members: channel.Members})
	}
	sort.Slice(channels, func(i, j int) bool {
		return channels[i].Name < channels[j].Name
	})
	return channels, nil
}

// RegisterPeer returns the peer id assigned by the web application, or the
// username when the response carries none.
func (c Client) RegisterPeer(ctx context.Context, username string) (string, error) {
	var payload registerResponse
	if err := c.do(ctx, http.MethodPost, pathRegisterPeer, registerRequest{Username: username}, &payload); err != nil {
		return "", err
	}
	if payload.PeerID == "" {
		return username, nil
	}
	return payload.PeerID, nil
}

func (c Client) CreateChannel(ctx context.Context, name, owner string) error {
	return c.do(ctx, http.MethodPost, pathCreateChannel, createChannelRequest{ChannelName: name, Owner: owner}, nil)
}

func (c Client) JoinChannel(ctx context.Context, name, username string) error {
	return c.do(ctx, http.MethodPost, pathJoinChannel, joinChannelRequest{ChannelName: name, Username: username}, nil)
}

func (c Client) Send(ctx context.Context, request domain.OutboundRequest) (domain.SendReceipt, error) {
	if request.Endpoint == "" {
		return domain.SendReceipt{}, errors.New("send endpoint is required")
	}

	var payload sendResponse
	if err := c.do(ctx, http.MethodPost, string(request.Endpoint), request.Body, &payload); err != nil {
		return domain.SendReceipt{}, err
	}
	return domain.SendReceipt{SentTo: payload.SentTo, Failed: payload.Failed}, nil
}

// PollMessages drains the inbound buffer. A non-2xx answer is treated as an
// empty batch; only transport failures are returned.
func (c Client) PollMessages(ctx context.Context) ([]domain.InboundMessage, error) {
	var payload pollResponse
	err := c.do(ctx, http.MethodGet, pathPollMessages, nil, &payload)
	if err != nil {
		var serviceErr *domain.ServiceError
		if errors.As(err, &serviceErr) && serviceErr.StatusCode != 0 {
			return nil, nil
		}
		return nil, err
	}

	messages := make([]domain.InboundMessage, 0, len(payload.Messages))
	for _, message := range payload.Messages {
		messages = append(messages, domain.InboundMessage{
			Text:          message.Message,
			SenderAddress: message.SenderAddr,
		})
	}
	return messages, nil
}

func (c Client) do(ctx context.Context, method, path string, body any, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create %s request: %w", path, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	started := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s %s: %w", method, path, ctx.Err())
		}
		c.Logger.Debug().Err(err).Str("endpoint", path).Str("request_id", requestID).Msg("peer request failed")
		return &domain.ServiceError{
			Kind:     domain.ErrTransportUnreachable,
			Endpoint: path,
			Message:  err.Error(),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	c.Logger.Debug().
		Str("endpoint", path).
		Int("status", resp.StatusCode).
		Str("request_id", requestID).
		Dur("elapsed", time.Since(started)).
		Msg("peer request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		kind := domain.ErrRequestRejected
		if resp.StatusCode == http.StatusServiceUnavailable {
			kind = domain.ErrServiceUnavailable
		}
		return &domain.ServiceError{
			Kind:       kind,
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Message:    decodeErrorMessage(resp.Body),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func decodeErrorMessage(body io.Reader) string {
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(body, maxResponseBytes)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("peer base url is required")
	}
	if path == "" {
		return "", errors.New("peer api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse peer base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("peer base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("peer base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse peer api path: %w", err)
	}
	return endpoint.String(), nil
}
