package main

import (
	"fmt"

	"github.com/jonathan/resume-optimizer/internal/api"
	"github.com/jonathan/resume-optimizer/internal/config"
	"github.com/jonathan/resume-optimizer/internal/logger"
	"github.com/jonathan/resume-optimizer/internal/session"
	"github.com/sirupsen/logrus"
)

var (
	rootConfigPath string
	rootBaseURL    string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&rootBaseURL, "base-url", "", "API base URL including version prefix (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

// loadConfig merges CLI flags over environment values over the config file.
func loadConfig() (config.Config, error) {
	defaults := config.FromEnv()

	if rootConfigPath != "" {
		fileCfg, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		defaults = defaults.MergeWithDefaults(*fileCfg)
	}

	flags := config.Config{BaseURL: rootBaseURL, Verbose: rootVerbose}
	cfg := flags.MergeWithDefaults(defaults)
	cfg.Verbose = cfg.Verbose || rootVerbose

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *logrus.Logger {
	log := logger.New()
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func newSessionStore(cfg config.Config) (*session.Store, error) {
	if cfg.SessionDir != "" {
		return session.NewStore(cfg.SessionDir), nil
	}
	return session.DefaultStore()
}

// newClient wires config, session store, and logger into an API client.
// Every command goes through here; there is no shared global client.
func newClient() (*api.Client, *session.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	store, err := newSessionStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	client, err := api.New(api.Config{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout(),
		Tokens:  store,
		Logger:  newLogger(cfg),
	})
	if err != nil {
		return nil, nil, err
	}
	return client, store, nil
}

// authError maps a 401 into a fresh-login hint after clearing the stale
// token, and passes every other error through unchanged.
func authError(store *session.Store, err error) error {
	if err == nil {
		return nil
	}
	if api.IsUnauthorized(err) {
		_ = store.Clear()
		return fmt.Errorf("session expired, please run 'resume_optimizer login' again: %w", err)
	}
	return err
}
