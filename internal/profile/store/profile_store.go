/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/wso2/identity-registration-client/internal/profile/model"
	"github.com/wso2/identity-registration-client/internal/system/constants"
	errors2 "github.com/wso2/identity-registration-client/internal/system/errors"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	slot       TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// Store persists the client's local state in a single SQLite file. It holds
// exactly two slots: the serialized session identity record and the device
// identifier. Partial updates are not supported; Put always serializes the
// complete record and callers read-modify-write.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the local store file and ensures the schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors2.NewServerError(errors2.STORE_OPEN, errors.New("storage path is required"))
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors2.NewServerError(errors2.STORE_OPEN, errors.Wrap(err, "open sqlite db"))
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, errors2.NewServerError(errors2.STORE_OPEN, errors.Wrap(err, "ping sqlite db"))
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, errors2.NewServerError(errors2.STORE_OPEN, errors.Wrap(err, "create kv table"))
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.sqlDB.Close()
}

// Get returns the cached identity record, or (nil, nil) when the slot is
// empty.
func (s *Store) Get(ctx context.Context) (*model.Identity, error) {
	raw, err := s.read(ctx, constants.SessionUserSlot)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var identity model.Identity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return nil, errors2.NewServerError(errors2.STORE_READ, errors.Wrap(err, "decode session identity"))
	}
	return &identity, nil
}

// Put serializes the complete identity record into the session slot,
// replacing whatever was there. Last write wins.
func (s *Store) Put(ctx context.Context, identity *model.Identity) error {
	if identity == nil {
		return errors2.NewServerError(errors2.STORE_WRITE, errors.New("identity is required"))
	}
	encoded, err := json.Marshal(identity)
	if err != nil {
		return errors2.NewServerError(errors2.STORE_WRITE, errors.Wrap(err, "encode session identity"))
	}
	return s.write(ctx, constants.SessionUserSlot, string(encoded))
}

// Clear empties the session slot. Used on explicit sign-out.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.sqlDB.ExecContext(ctx, `DELETE FROM kv WHERE slot = ?`, constants.SessionUserSlot)
	if err != nil {
		return errors2.NewServerError(errors2.STORE_WRITE, errors.Wrap(err, "clear session slot"))
	}
	return nil
}

// DeviceID returns the stable device identifier, generating and persisting
// one on first use.
func (s *Store) DeviceID(ctx context.Context) (string, error) {
	existing, err := s.read(ctx, constants.DeviceIDSlot)
	if err != nil {
		return "", err
	}
	if existing != "" {
		return existing, nil
	}

	generated, err := uuid.NewRandom()
	if err != nil {
		return "", errors2.NewServerError(errors2.DEVICE_ID_GEN, err)
	}
	if err := s.write(ctx, constants.DeviceIDSlot, generated.String()); err != nil {
		return "", err
	}
	return generated.String(), nil
}

func (s *Store) read(ctx context.Context, slot string) (string, error) {
	var value string
	err := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM kv WHERE slot = ?`, slot).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", errors2.NewServerError(errors2.STORE_READ, errors.Wrapf(err, "read slot %s", slot))
	}
	return value, nil
}

func (s *Store) write(ctx context.Context, slot, value string) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO kv (slot, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		slot, value, time.Now().UTC().UnixMilli())
	if err != nil {
		return errors2.NewServerError(errors2.STORE_WRITE, errors.Wrapf(err, "write slot %s", slot))
	}
	return nil
}
