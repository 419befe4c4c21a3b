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
	"encoding/json"
	"net/http"
	"time"

	"github.com/wso2/identity-registration-client/internal/catalog/model"
	"github.com/wso2/identity-registration-client/internal/system/cache"
	"github.com/wso2/identity-registration-client/internal/system/constants"
	errors2 "github.com/wso2/identity-registration-client/internal/system/errors"
	"github.com/wso2/identity-registration-client/internal/system/httpclient"
	"github.com/wso2/identity-registration-client/internal/system/log"
)

// CatalogService fetches the language and branch catalogs from the backend.
// Catalogs are immutable snapshots cached per process lifetime; fetches are
// idempotent and may run concurrently with profile reconciliation.
type CatalogService struct {
	client *httpclient.Client
	cache  *cache.Cache
}

// NewCatalogService creates a CatalogService over the given backend client.
func NewCatalogService(client *httpclient.Client, ttl time.Duration) *CatalogService {
	return &CatalogService{
		client: client,
		cache:  cache.NewCache(ttl),
	}
}

// Languages returns the language catalog, served from cache when fresh.
func (s *CatalogService) Languages(ctx context.Context) ([]model.LanguageEntry, error) {

	if cached, found := s.cache.Get(constants.LanguageCatalogCacheKey); found {
		return cached.([]model.LanguageEntry), nil
	}

	raw, err := s.client.DoJSON(ctx, http.MethodGet, constants.LanguagesPath, nil)
	if err != nil {
		return nil, errors2.NewServerError(errors2.CATALOG_FETCH, err)
	}

	var catalog []model.LanguageEntry
	if err := json.Unmarshal(httpclient.UnwrapList(raw), &catalog); err != nil {
		return nil, errors2.NewServerError(errors2.UNMARSHAL_JSON, err)
	}

	log.GetLogger().Debug("Fetched language catalog", log.Int("entries", len(catalog)))
	s.cache.Set(constants.LanguageCatalogCacheKey, catalog)
	return catalog, nil
}

// Branches returns the branch catalog, served from cache when fresh.
func (s *CatalogService) Branches(ctx context.Context) ([]model.BranchEntry, error) {

	if cached, found := s.cache.Get(constants.BranchCatalogCacheKey); found {
		return cached.([]model.BranchEntry), nil
	}

	raw, err := s.client.DoJSON(ctx, http.MethodGet, constants.BranchesPath, nil)
	if err != nil {
		return nil, errors2.NewServerError(errors2.CATALOG_FETCH, err)
	}

	var catalog []model.BranchEntry
	if err := json.Unmarshal(httpclient.UnwrapList(raw), &catalog); err != nil {
		return nil, errors2.NewServerError(errors2.UNMARSHAL_JSON, err)
	}

	log.GetLogger().Debug("Fetched branch catalog", log.Int("entries", len(catalog)))
	s.cache.Set(constants.BranchCatalogCacheKey, catalog)
	return catalog, nil
}
