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

package model

import (
	"encoding/json"
	"time"
)

// Item is a single announcement from the news feed.
type Item struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"imageUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type itemWire struct {
	ID        string `json:"id"`
	AltID     string `json:"_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Content   string `json:"content"`
	ImageURL  string `json:"imageUrl"`
	Image     string `json:"image"`
	CreatedAt string `json:"createdAt"`
}

// UnmarshalJSON tolerates the alternate field names seen across backend
// versions and drops timestamps it cannot parse rather than failing the
// whole feed.
func (i *Item) UnmarshalJSON(data []byte) error {

	var wire itemWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	i.ID = firstNonEmpty(wire.ID, wire.AltID)
	i.Title = wire.Title
	i.Body = firstNonEmpty(wire.Body, wire.Content)
	i.ImageURL = firstNonEmpty(wire.ImageURL, wire.Image)
	if wire.CreatedAt != "" {
		if ts, err := time.Parse(time.RFC3339, wire.CreatedAt); err == nil {
			i.CreatedAt = ts
		}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
