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
	"sort"

	"github.com/wso2/identity-registration-client/internal/news/model"
	"github.com/wso2/identity-registration-client/internal/system/constants"
	errors2 "github.com/wso2/identity-registration-client/internal/system/errors"
	"github.com/wso2/identity-registration-client/internal/system/httpclient"
	"github.com/wso2/identity-registration-client/internal/system/log"
)

// NewsService fetches the announcement feed shown on the home screen.
type NewsService struct {
	client *httpclient.Client
}

// NewNewsService creates a NewsService backed by the given HTTP client.
func NewNewsService(client *httpclient.Client) *NewsService {
	return &NewsService{client: client}
}

// Latest returns the most recent announcements, newest first. A feed the
// backend returns empty, or under any envelope, yields an empty slice and no
// error so callers can always range over the result.
func (s *NewsService) Latest(ctx context.Context) ([]model.Item, error) {

	raw, err := s.client.DoJSON(ctx, http.MethodGet, constants.LatestNewsPath, nil)
	if err != nil {
		return nil, err
	}
	list := httpclient.UnwrapList(raw)

	items := make([]model.Item, 0, 8)
	var rows []json.RawMessage
	if err := json.Unmarshal(list, &rows); err != nil {
		return nil, errors2.NewServerError(errors2.UNMARSHAL_JSON, err)
	}
	for _, row := range rows {
		var item model.Item
		if err := json.Unmarshal(row, &item); err != nil {
			log.GetLogger().Warn("Dropping malformed news item", log.Error(err))
			continue
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}
