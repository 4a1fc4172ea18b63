package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/peerchat-cli/internal/domain"
)

func newTestRepository(t *testing.T, profilePath string) *Repository {
	t.Helper()

	config := viper.New()
	config.Set(ProfilePathKey, profilePath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "profile.toml"))

	profile := domain.Profile{
		Username:     "alice",
		PeerID:       "alice@10.0.0.2:5001",
		RegisteredAt: time.Date(2026, 3, 4, 10, 30, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(context.Background(), profile))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestRepositorySaveReplacesProfile(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "profile.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Profile{Username: "alice", PeerID: "alice@10.0.0.2:5001"}))
	require.NoError(t, repo.Save(context.Background(), domain.Profile{Username: "bob", PeerID: "bob@10.0.0.2:5001"}))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
}

func TestRepositoryMissingFileIsProfileNotFound(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "profile.toml"))

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestRepositorySaveRejectsEmptyUsername(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "profile.toml"))

	err := repo.Save(context.Background(), domain.Profile{PeerID: "x"})
	require.Error(t, err)
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), domain.Profile{Username: "alice", PeerID: "alice@10.0.0.2:5001"}))

	profilePath := filepath.Join(homeDir, ".peerchat", "profile.toml")
	assert.Equal(t, profilePath, repo.Path())
	info, err := os.Stat(profilePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	profilePath := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(profilePath, []byte("profile = ["), 0o600))

	repo := newTestRepository(t, profilePath)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode profile file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "profile.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Profile{Username: "alice"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstances(t *testing.T) {
	t.Parallel()

	profilePath := filepath.Join(t.TempDir(), "profile.toml")
	repoA := newTestRepository(t, profilePath)
	repoB := newTestRepository(t, profilePath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	for _, item := range []struct {
		repo     *Repository
		username string
	}{{repoA, "alice"}, {repoB, "bob"}} {
		item := item
		go func() {
			defer wg.Done()
			<-start
			for i := 0; i < perRepoWrites; i++ {
				errCh <- item.repo.Save(context.Background(), domain.Profile{Username: item.username, PeerID: item.username + "@10.0.0.2:5001"})
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	got, err := repoA.Load(context.Background())
	require.NoError(t, err)
	assert.Contains(t, []string{"alice", "bob"}, got.Username)
	assert.Equal(t, got.Username+"@10.0.0.2:5001", got.PeerID)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	profilePath := filepath.Join(t.TempDir(), "profile.toml")
	repo := newTestRepository(t, profilePath)

	require.NoError(t, repo.Save(context.Background(), domain.Profile{Username: "alice", PeerID: "alice@10.0.0.2:5001"}))

	data, err := os.ReadFile(profilePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[profile]")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	profilePath := filepath.Join(t.TempDir(), "profile.toml")
	require.NoError(t, os.WriteFile(profilePath, []byte(strings.Join([]string{
		"version = 999",
		"",
		"[profile]",
		"username = \"alice\"",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, profilePath)

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported profile schema version")
}
