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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wso2/identity-registration-client/internal/profile/model"
	errors2 "github.com/wso2/identity-registration-client/internal/system/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func Test_Store_EmptyGetReturnsNil(t *testing.T) {

	s := newTestStore(t)

	identity, err := s.Get(context.Background())
	require.NoError(t, err)
	require.Nil(t, identity)
}

func Test_Store_PutGetRoundTrip(t *testing.T) {

	s := newTestStore(t)
	ctx := context.Background()

	original := &model.Identity{
		ID:          "u1",
		ArabicName:  "أحمد",
		EnglishName: "Ahmad",
		Phone:       "+96170123456",
		Role:        "STUDENT",
		Languages:   []model.LanguageProficiency{{Language: "en", Level: "beginner"}},
		Status:      "pending",
	}
	require.NoError(t, s.Put(ctx, original))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, original.ID, got.ID)
	require.Equal(t, original.ArabicName, got.ArabicName)
	require.Equal(t, original.EnglishName, got.EnglishName)
	require.Equal(t, original.Phone, got.Phone)
	require.Equal(t, original.Role, got.Role)
	require.Equal(t, original.Languages, got.Languages)
	require.Equal(t, original.Status, got.Status)
}

func Test_Store_PutReplacesCompleteRecord(t *testing.T) {

	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, &model.Identity{ID: "u1", Status: "pending"}))
	require.NoError(t, s.Put(ctx, &model.Identity{ID: "u1", Status: "approved"}))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "approved", got.Status)
	require.Empty(t, got.EnglishName)
}

func Test_Store_Clear(t *testing.T) {

	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, &model.Identity{ID: "u1"}))
	require.NoError(t, s.Clear(ctx))

	identity, err := s.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, identity)
}

func Test_Store_DeviceIDIsStable(t *testing.T) {

	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.DeviceID(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := s.DeviceID(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)

	// Clearing the session slot must not touch the device identifier.
	require.NoError(t, s.Clear(ctx))
	third, err := s.DeviceID(ctx)
	require.NoError(t, err)
	require.Equal(t, first, third)
}

func Test_Store_OpenRequiresPath(t *testing.T) {

	_, err := Open("  ")
	require.Error(t, err)

	var serverErr *errors2.ServerError
	require.ErrorAs(t, err, &serverErr)
	require.Equal(t, errors2.STORE_OPEN.Code, serverErr.Code)
}

func Test_Store_ReadFailureCarriesStoreCode(t *testing.T) {

	s := newTestStore(t)
	require.NoError(t, s.Close())

	_, err := s.Get(context.Background())
	require.Error(t, err)

	var serverErr *errors2.ServerError
	require.ErrorAs(t, err, &serverErr)
	require.Equal(t, errors2.STORE_READ.Code, serverErr.Code)
}
