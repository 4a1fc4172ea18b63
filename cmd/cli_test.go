package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentRequest struct {
	Path string
	Body map[string]any
}

// fakePeerApp stands in for the local peer web application.
type fakePeerApp struct {
	mu       sync.Mutex
	sent     []sentRequest
	inbound  []map[string]string
	delay    time.Duration
	sendCode int
	listCode int
}

func newFakePeerApp(t *testing.T) (*fakePeerApp, *httptest.Server) {
	t.Helper()

	app := &fakePeerApp{sendCode: http.StatusOK}
	server := httptest.NewServer(http.HandlerFunc(app.serveHTTP))
	t.Cleanup(server.Close)
	t.Setenv("PEERCHAT_BASE_URL", server.URL)

	return app, server
}

func (a *fakePeerApp) serveHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if r.Method == http.MethodPost {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.delay > 0 {
		time.Sleep(a.delay)
	}

	switch r.URL.Path {
	case "/get-list":
		if a.listCode != 0 {
			w.WriteHeader(a.listCode)
			_, _ = fmt.Fprint(w, `{"peers":[],"message":"Tracker unreachable"}`)
			return
		}
		_, _ = fmt.Fprint(w, `{"peers":[{"username":"alice","ip":"10.0.0.2","port":5001},{"username":"bob","ip":"10.0.0.5","port":6001}]}`)
	case "/get-channels":
		_, _ = fmt.Fprint(w, `{"channels":{"general":{"members":["alice","bob"]},"random":{"members":["bob"]}}}`)
	case "/register-peer":
		_, _ = fmt.Fprintf(w, `{"peer_id":"%s@127.0.0.1:5001"}`, body["username"])
	case "/create-channel", "/join-channel":
		a.sent = append(a.sent, sentRequest{Path: r.URL.Path, Body: body})
		_, _ = fmt.Fprint(w, `{"status":"success"}`)
	case "/send-peer", "/broadcast-peer":
		a.sent = append(a.sent, sentRequest{Path: r.URL.Path, Body: body})
		if a.sendCode != http.StatusOK {
			w.WriteHeader(a.sendCode)
			_, _ = fmt.Fprint(w, `{"status":"error","message":"Tracker unreachable"}`)
			return
		}
		_, _ = fmt.Fprint(w, `{"sent_to":2,"failed":0}`)
	case "/check-new-messages":
		messages := a.inbound
		a.inbound = nil
		_ = json.NewEncoder(w).Encode(map[string]any{"messages": messages})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (a *fakePeerApp) configure(fn func(*fakePeerApp)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(a)
}

func (a *fakePeerApp) sentRequests() []sentRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]sentRequest(nil), a.sent...)
}

func TestVersionPrintsVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestRegisterThenWhoami(t *testing.T) {
	newFakePeerApp(t)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "register", "alice")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Registered alice (peer id: alice@127.0.0.1:5001)")

	_, err = os.Stat(filepath.Join(home, ".peerchat", "profile.toml"))
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "alice")
	assert.Contains(t, stdout, "peer id: alice@127.0.0.1:5001")
}

func TestWhoamiWithoutProfile(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not registered.")
}

func TestRegisterRequiresUsername(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "register")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestPeersHidesSelf(t *testing.T) {
	newFakePeerApp(t)
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(home, "alice"))

	stdout, _, err := executeCLI(t, home, "peers")
	require.NoError(t, err)
	assert.Contains(t, stdout, "online: 1")
	assert.Contains(t, stdout, "bob@10.0.0.5:6000")
	assert.NotContains(t, stdout, "alice@")
}

func TestPeersJSONWithRouting(t *testing.T) {
	newFakePeerApp(t)
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "peers", "--json")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(stdout)))

	var peers []map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &peers))
	require.Len(t, peers, 2)
	assert.Equal(t, "alice@10.0.0.2:5000", peers[0]["DisplayID"])
	assert.Equal(t, "alice@10.0.0.2:5001", peers[0]["RoutingID"])
}

func TestPeersShowsRefreshSpinner(t *testing.T) {
	app, _ := newFakePeerApp(t)
	app.configure(func(a *fakePeerApp) { a.delay = 200 * time.Millisecond })

	_, stderr, err := executeCLI(t, t.TempDir(), "peers")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Refreshing peers and channels")
}

func TestPeersReportsServiceUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = fmt.Fprint(w, `{"peers":[],"message":"Tracker unreachable"}`)
	}))
	defer server.Close()
	t.Setenv("PEERCHAT_BASE_URL", server.URL)

	_, stderr, err := executeCLI(t, t.TempDir(), "peers")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory service unavailable")
	assert.Contains(t, stderr, "Tracker unavailable while loading peers and channels: Tracker unreachable")
}

func TestChannelListMarksJoined(t *testing.T) {
	newFakePeerApp(t)
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(home, "alice"))

	stdout, _, err := executeCLI(t, home, "channel", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "#general (2 members) [CHAT]")
	assert.Contains(t, stdout, "#random (1 members) [JOIN]")
}

func TestChannelCreateAndJoin(t *testing.T) {
	app, _ := newFakePeerApp(t)
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(home, "alice"))

	stdout, _, err := executeCLI(t, home, "channel", "create", "#ops")
	require.NoError(t, err)
	assert.Equal(t, "Channel #ops created successfully!\n", stdout)

	stdout, _, err = executeCLI(t, home, "channel", "join", "random")
	require.NoError(t, err)
	assert.Equal(t, "Joined channel #random.\n", stdout)

	sent := app.sentRequests()
	require.Len(t, sent, 2)
	assert.Equal(t, "/create-channel", sent[0].Path)
	assert.Equal(t, map[string]any{"channel_name": "ops", "owner": "alice"}, sent[0].Body)
	assert.Equal(t, "/join-channel", sent[1].Path)
	assert.Equal(t, map[string]any{"channel_name": "random", "username": "alice"}, sent[1].Body)
}

func TestChannelCreateRequiresProfile(t *testing.T) {
	app, _ := newFakePeerApp(t)

	_, _, err := executeCLI(t, t.TempDir(), "channel", "create", "ops")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "peerchat register")
	assert.Empty(t, app.sentRequests())
}

func TestSendToChannel(t *testing.T) {
	app, _ := newFakePeerApp(t)
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(home, "alice"))

	stdout, _, err := executeCLI(t, home, "send", "--channel", "general", "standup", "in", "5")
	require.NoError(t, err)
	assert.Equal(t, "Sent to #general (Success: 2, Failed: 0).\n", stdout)

	sent := app.sentRequests()
	require.Len(t, sent, 1)
	assert.Equal(t, "/send-peer", sent[0].Path)
	assert.Equal(t, map[string]any{
		"message":         "standup in 5",
		"sender_username": "alice",
		"target_id":       "general",
		"target_type":     "channel",
	}, sent[0].Body)
}

func TestSendToPeerUsesRoutingID(t *testing.T) {
	app, _ := newFakePeerApp(t)
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(home, "alice"))

	stdout, _, err := executeCLI(t, home, "send", "--peer", "bob", "hi bob")
	require.NoError(t, err)
	assert.Equal(t, "Sent message to bob.\n", stdout)

	sent := app.sentRequests()
	require.Len(t, sent, 1)
	assert.Equal(t, "bob@10.0.0.5:6001", sent[0].Body["target_id"])
	assert.Equal(t, "peer", sent[0].Body["target_type"])
}

func TestSendToPeerWhileTrackerDown(t *testing.T) {
	app, _ := newFakePeerApp(t)
	app.configure(func(a *fakePeerApp) { a.listCode = http.StatusServiceUnavailable })
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(home, "alice"))

	stdout, _, err := executeCLI(t, home, "send", "--peer", "bob@10.0.0.5:6001", "still there?")
	require.NoError(t, err)
	assert.Equal(t, "Sent message to bob.\n", stdout)

	sent := app.sentRequests()
	require.Len(t, sent, 1)
	assert.Equal(t, "bob@10.0.0.5:6001", sent[0].Body["target_id"])
}

func TestSendBlankMessageMakesNoRequest(t *testing.T) {
	app, _ := newFakePeerApp(t)
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(home, "alice"))

	_, stderr, err := executeCLI(t, home, "send", "--peer", "bob", "   ")
	require.Error(t, err)
	assert.Contains(t, stderr, "Message is empty.")
	assert.Empty(t, app.sentRequests())
}

func TestSendBroadcast(t *testing.T) {
	app, _ := newFakePeerApp(t)
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(home, "alice"))

	stdout, _, err := executeCLI(t, home, "send", "--broadcast", "hello everyone")
	require.NoError(t, err)
	assert.Equal(t, "Broadcast message sent successfully.\n", stdout)

	sent := app.sentRequests()
	require.Len(t, sent, 1)
	assert.Equal(t, "/broadcast-peer", sent[0].Path)
	assert.Equal(t, "📢 Broadcast: [alice] hello everyone", sent[0].Body["message"])
}

func TestSendReportsTrackerUnavailable(t *testing.T) {
	app, _ := newFakePeerApp(t)
	app.configure(func(a *fakePeerApp) { a.sendCode = http.StatusServiceUnavailable })
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(home, "alice"))

	_, stderr, err := executeCLI(t, home, "send", "--channel", "general", "hello")
	require.Error(t, err)
	assert.Contains(t, stderr, "Tracker unavailable while sending message: Tracker unreachable")
}

func TestSendWithoutProfileAsksToRegister(t *testing.T) {
	app, _ := newFakePeerApp(t)

	_, stderr, err := executeCLI(t, t.TempDir(), "send", "--broadcast", "hello")
	require.Error(t, err)
	assert.Contains(t, stderr, "Please register your Peer before sending a message.")
	assert.Empty(t, app.sentRequests())
}

func TestSendRequiresExactlyOneTarget(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no target", args: []string{"send", "hello"}, want: "exactly one of --broadcast, --channel or --peer is required"},
		{name: "two targets", args: []string{"send", "--broadcast", "--peer", "bob", "hello"}, want: "none of the others can be"},
		{name: "no message", args: []string{"send", "--broadcast"}, want: "requires at least 1 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCLI(t, t.TempDir(), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestWatchPrintsAttributedMessages(t *testing.T) {
	app, _ := newFakePeerApp(t)
	app.configure(func(a *fakePeerApp) {
		a.inbound = []map[string]string{
			{"message": "hi there", "sender_addr": "10.0.0.5:6001"},
		}
	})
	t.Setenv("PEERCHAT_POLL_INTERVAL", "20ms")
	home := t.TempDir()
	require.NoError(t, writeProfileFixture(home, "alice"))

	stdout, _, err := executeCLI(t, home, "watch", "--for", "300ms")
	require.NoError(t, err)
	assert.Contains(t, stdout, "bob: hi there")
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	_, server := newFakePeerApp(t)
	t.Setenv("PEERCHAT_BASE_URL", "")
	home := t.TempDir()

	configDir := filepath.Join(home, ".peerchat")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	config := fmt.Sprintf("[server]\nbase_url = %q\n", server.URL)
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o644))

	stdout, _, err := executeCLI(t, home, "channel", "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "\"general\"")
}

func TestDebugFlagWritesLogFile(t *testing.T) {
	newFakePeerApp(t)
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "--debug", "peers")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, ".peerchat", "debug.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\"message\":\"wired\"")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeProfileFixture(home, username string) error {
	configDir := filepath.Join(home, ".peerchat")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	profile := fmt.Sprintf(`version = 1

[profile]
username = %q
peer_id = "%s@127.0.0.1:5001"
registered_at = "2026-03-04T10:30:00Z"
`, username, username)

	return os.WriteFile(filepath.Join(configDir, "profile.toml"), []byte(profile), 0o600)
}
