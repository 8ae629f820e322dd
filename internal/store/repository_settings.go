package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/logger"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs the SQLite-backed [SettingsRepository].
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *settingsRepository) Get(ctx context.Context, namespace, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSettingQuery(namespace, key)
	if err != nil {
		return "", err
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Get").
			Str("namespace", namespace).
			Str("key", key).
			Msg("failed to read setting")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *settingsRepository) Set(ctx context.Context, namespace, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetSettingQuery(namespace, key, value)
	if err != nil {
		return err
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Set").
			Str("namespace", namespace).
			Str("key", key).
			Msg("failed to write setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *settingsRepository) Delete(ctx context.Context, namespace, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSettingQuery(namespace, key)
	if err != nil {
		return err
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Delete").
			Str("namespace", namespace).
			Str("key", key).
			Msg("failed to delete setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

type namespacedSettings struct {
	repo      SettingsRepository
	namespace string
}

// NewNamespacedSettings binds repo to namespace.
func NewNamespacedSettings(repo SettingsRepository, namespace string) Settings {
	return &namespacedSettings{repo: repo, namespace: namespace}
}

func (n *namespacedSettings) Get(ctx context.Context, key string) (string, error) {
	return n.repo.Get(ctx, n.namespace, key)
}

func (n *namespacedSettings) Set(ctx context.Context, key, value string) error {
	return n.repo.Set(ctx, n.namespace, key, value)
}

func (n *namespacedSettings) Delete(ctx context.Context, key string) error {
	return n.repo.Delete(ctx, n.namespace, key)
}
