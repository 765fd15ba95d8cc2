// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/crisiscleanup/worksite-sync/internal/config"
	"github.com/crisiscleanup/worksite-sync/internal/logger"
)

// ClientStorages groups the client-side repositories of the sync engine into
// a single value that can be passed around the service layer.
type ClientStorages struct {
	// ChangeRepository is the SQLite-backed queue of local worksite changes.
	ChangeRepository WorksiteChangeRepository
	// IDMapRepository persists local to network id maps.
	IDMapRepository WorksiteIDMapRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories on top of the connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ChangeRepository: NewWorksiteChangeRepository(db, logger),
		IDMapRepository:  NewWorksiteIDMapRepository(db, logger),
		db:               db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
