package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/FlagBrew/local-pokedex/internal/gui"
	"github.com/FlagBrew/local-pokedex/internal/models"
	"github.com/apex/log"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Setup loads the configuration at path, falling back to the interactive
// wizard in cli mode when it does not exist yet.
func Setup(ctx context.Context, mode, path string) *models.Config {
	logger := log.FromContext(ctx).WithField("path", path)

	cfg, err := LoadConfig(path)
	switch {
	case err == nil:
		return cfg
	case !errors.Is(err, os.ErrNotExist):
		logger.WithError(err).Fatal("invalid configuration")
	}

	if mode == "docker" {
		logger.Fatal("You're running in docker mode and did not volume mount the config.json, interactive set-up is not available for docker.")
	}

	cfg = DefaultConfig()

	app := gui.NewWizard(cfg)
	if err := app.Start(); err != nil {
		logger.WithError(err).Fatal("Failed to start interactive wizard")
	}

	if err := ValidateConfig(cfg); err != nil {
		logger.WithError(err).Fatal("wizard produced an invalid configuration")
	}

	// Save the config once done.
	if err := SaveConfig(path, cfg); err != nil {
		logger.WithError(err).Error("failed to save configuration")
	}

	return cfg
}

func DefaultConfig() *models.Config {
	return &models.Config{
		HTTP: models.HTTPConfig{
			ListeningAddr: "0.0.0.0",
			Port:          8080,
		},
		Explorer: models.ExplorerConfig{
			Profile: models.DefaultProfile,
		},
	}
}

func LoadConfig(path string) (*models.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func ValidateConfig(cfg *models.Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

func SaveConfig(path string, cfg *models.Config) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
