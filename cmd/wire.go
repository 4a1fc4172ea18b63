package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/bnema/peerchat-cli/internal/adapters/peerhttp"
	chatrender "github.com/bnema/peerchat-cli/internal/adapters/render/chat"
	tomlrepo "github.com/bnema/peerchat-cli/internal/adapters/repo/toml"
	"github.com/bnema/peerchat-cli/internal/application"
	"github.com/bnema/peerchat-cli/internal/domain"
	"github.com/bnema/peerchat-cli/internal/ports"
	"github.com/bnema/peerchat-cli/internal/version"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "PEERCHAT"

	baseURLKey      = "server.base_url"
	pollIntervalKey = "poll.interval"
	httpTimeoutKey  = "http.timeout"
	logLevelKey     = "log.level"
	logFileKey      = "log.file"

	defaultBaseURL     = "http://127.0.0.1:8000"
	defaultHTTPTimeout = 30 * time.Second
	defaultLogLevel    = "info"
	debugLogFile       = "debug.log"
)

type rootFlags struct {
	configFile string
	debug      bool
}

type app struct {
	cfg   *viper.Viper
	flags rootFlags

	service           *application.ChatService
	profiles          *tomlrepo.Repository
	logger            zerolog.Logger
	logFile           io.Closer
	pollInterval      time.Duration
	directoryRenderer func(application.DirectoryView, chatrender.RenderOptions) (string, error)
	now               func() time.Time
}

func newApp() *app {
	return &app{
		cfg:               viper.New(),
		logger:            zerolog.Nop(),
		directoryRenderer: chatrender.RenderDirectory,
		now:               time.Now,
	}
}

func (a *app) bindFlags(flags *pflag.FlagSet) {
	_ = a.cfg.BindPFlag(baseURLKey, flags.Lookup("base-url"))
	_ = a.cfg.BindPFlag(logLevelKey, flags.Lookup("log-level"))
	_ = a.cfg.BindPFlag(logFileKey, flags.Lookup("log-file"))
}

// wire builds the service graph once flags are parsed.
func (a *app) wire() error {
	if a.service != nil {
		return nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}
	configDir := filepath.Join(homeDir, tomlrepo.ProfileConfigDir)

	if err := loadConfig(a.cfg, configDir, a.flags.configFile); err != nil {
		return err
	}

	logger, logFile, err := newLogger(a.cfg.GetString(logLevelKey), a.cfg.GetString(logFileKey), a.flags.debug, configDir)
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	profiles, err := tomlrepo.NewRepository(a.cfg)
	if err != nil {
		return fmt.Errorf("wire profile repository: %w", err)
	}

	client := peerhttp.Client{
		BaseURL:        a.cfg.GetString(baseURLKey),
		HTTPClient:     &http.Client{},
		RequestTimeout: a.cfg.GetDuration(httpTimeoutKey),
		UserAgent:      version.UserAgent(),
		Logger:         logger.With().Str("component", "peerhttp").Logger(),
	}

	a.logger = logger
	a.logFile = logFile
	a.profiles = profiles
	a.pollInterval = a.cfg.GetDuration(pollIntervalKey)
	a.service = application.NewChatService(client, client, profiles, ports.SystemClock{}).
		WithLogger(logger.With().Str("component", "chat").Logger())

	logger.Debug().
		Str("base_url", client.BaseURL).
		Str("profile", profiles.Path()).
		Dur("poll_interval", a.pollInterval).
		Msg("wired")

	return nil
}

func (a *app) close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

func loadConfig(cfg *viper.Viper, configDir, configFile string) error {
	cfg.SetDefault(baseURLKey, defaultBaseURL)
	cfg.SetDefault(pollIntervalKey, application.DefaultPollInterval)
	cfg.SetDefault(httpTimeoutKey, defaultHTTPTimeout)
	cfg.SetDefault(logLevelKey, defaultLogLevel)
	cfg.SetDefault(tomlrepo.ProfilePathKey, filepath.Join(configDir, "profile.toml"))

	cfg.SetEnvPrefix(envPrefix)
	for key, env := range map[string]string{
		baseURLKey:              "PEERCHAT_BASE_URL",
		pollIntervalKey:         "PEERCHAT_POLL_INTERVAL",
		httpTimeoutKey:          "PEERCHAT_HTTP_TIMEOUT",
		logLevelKey:             "PEERCHAT_LOG_LEVEL",
		logFileKey:              "PEERCHAT_LOG_FILE",
		tomlrepo.ProfilePathKey: "PEERCHAT_PROFILE_PATH",
	} {
		if err := cfg.BindEnv(key, env); err != nil {
			return fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if configFile != "" {
		cfg.SetConfigFile(configFile)
	} else {
		cfg.SetConfigName(configName)
		cfg.SetConfigType(configType)
		cfg.AddConfigPath(configDir)
	}

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &configNotFound) {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	return nil
}

// loadProfile restores the stored identity. Unless required, a missing
// profile is not an error.
func (a *app) loadProfile(ctx context.Context, required bool) (domain.Profile, error) {
	profile, err := a.service.LoadProfile(ctx)
	if err == nil {
		return profile, nil
	}
	if errors.Is(err, domain.ErrNotRegistered) {
		if !required {
			return domain.Profile{}, nil
		}
		return domain.Profile{}, fmt.Errorf("%w: run `peerchat register <username>` first", domain.ErrNotRegistered)
	}
	return domain.Profile{}, err
}
