package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/register-peer":
			_, _ = fmt.Fprint(w, `{"status":"success","peer_id":"alice@127.0.0.1:5001"}`)
		case "/get-list":
			_, _ = fmt.Fprint(w, `{"peers":[{"username":"alice","ip":"127.0.0.1","port":5001},{"username":"bob","ip":"127.0.0.1","port":6001}]}`)
		case "/get-channels":
			_, _ = fmt.Fprint(w, `{"channels":{}}`)
		case "/broadcast-peer":
			_, _ = fmt.Fprint(w, `{"status":"success"}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runPeerchat(t, binaryPath, home, server.URL, "register", "alice")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runPeerchat(t, binaryPath, home, server.URL, "whoami")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "peer id: alice@127.0.0.1:5001")

	stdout, stderr, err = runPeerchat(t, binaryPath, home, server.URL, "peers")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "bob@127.0.0.1:6000")

	stdout, stderr, err = runPeerchat(t, binaryPath, home, server.URL, "send", "--broadcast", "hello")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Broadcast message sent successfully.")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "peerchat-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/peerchat")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build peerchat binary: %s", string(output))
	return binaryPath
}

func runPeerchat(t *testing.T, binaryPath, home, baseURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "PEERCHAT_BASE_URL="+baseURL)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
