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

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wso2/identity-registration-client/internal/system/config"
	"github.com/wso2/identity-registration-client/internal/system/httpclient"
)

func newTestClient(t *testing.T, handler http.Handler) *httpclient.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return httpclient.NewClient(config.BackendConfig{BaseURL: srv.URL, TimeoutSeconds: 5})
}

func Test_CatalogService_Languages(t *testing.T) {

	hits := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/languages", r.URL.Path)
		hits++
		w.Write([]byte(`{"data":[
			{"_id":"l1","label":{"en":"English","ar":"الإنجليزية"},"levels":[{"_id":"lv1","en":"Beginner","ar":"مبتدئ"}]},
			{"id":"l2","language":{"en":"French"}}
		]}`))
	}))

	svc := NewCatalogService(client, time.Minute)

	catalog, err := svc.Languages(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	require.Equal(t, "l1", catalog[0].ID)
	require.Equal(t, "English", catalog[0].Label.En)
	require.Len(t, catalog[0].Levels, 1)
	require.Equal(t, "French", catalog[1].Label.En)

	// Second call is served from cache.
	_, err = svc.Languages(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, hits)
}

func Test_CatalogService_Branches_BareArrayEnvelope(t *testing.T) {

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/branches", r.URL.Path)
		w.Write([]byte(`[{"_id":"b1","name":{"en":"Downtown","ar":"وسط المدينة"},"code":"DT"}]`))
	}))

	svc := NewCatalogService(client, time.Minute)

	catalog, err := svc.Branches(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	require.Equal(t, "b1", catalog[0].ID)
	require.Equal(t, "DT", catalog[0].Code)
}

func Test_CatalogService_EmptyEnvelope(t *testing.T) {

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"nothing here"}`))
	}))

	svc := NewCatalogService(client, time.Minute)

	catalog, err := svc.Branches(context.Background())
	require.NoError(t, err)
	require.Empty(t, catalog)
}

func Test_CatalogService_BackendError(t *testing.T) {

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	svc := NewCatalogService(client, time.Minute)

	_, err := svc.Languages(context.Background())
	require.Error(t, err)
}
