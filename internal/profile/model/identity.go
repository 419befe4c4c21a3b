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
	"strings"

	catalog "github.com/wso2/identity-registration-client/internal/catalog/model"
)

// LanguageProficiency pairs a language reference with a level reference.
// Both fields are references into the catalogs, not guaranteed catalog keys;
// they must go through the resolver before display.
type LanguageProficiency struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// Identity is the canonical user record exchanged with the backend and
// cached locally.
type Identity struct {
	ID              string                `json:"id"`
	ArabicName      string                `json:"arabicName"`
	EnglishName     string                `json:"englishName"`
	Phone           string                `json:"phone"`
	Role            string                `json:"role"`
	Branch          catalog.Reference     `json:"branchId"`
	Languages       []LanguageProficiency `json:"languages"`
	Status          string                `json:"status"`
	ProfileImageURL string                `json:"profileImageUrl"`
}

// identityWire covers every record shape the backend has emitted over time:
// `_id`/`userId` instead of `id`, `branch` instead of `branchId`, a single
// top-level `language`/`level` pair instead of the `languages` list, and
// list entries that are not both strings.
type identityWire struct {
	ID              string            `json:"id"`
	MongoID         string            `json:"_id"`
	UserID          string            `json:"userId"`
	ArabicName      string            `json:"arabicName"`
	EnglishName     string            `json:"englishName"`
	Phone           string            `json:"phone"`
	Role            string            `json:"role"`
	BranchID        catalog.Reference `json:"branchId"`
	Branch          catalog.Reference `json:"branch"`
	Languages       []json.RawMessage `json:"languages"`
	Language        string            `json:"language"`
	Level           string            `json:"level"`
	Status          string            `json:"status"`
	ProfileImageURL string            `json:"profileImageUrl"`
}

func (id *Identity) UnmarshalJSON(data []byte) error {
	var wire identityWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	id.ID = firstNonEmpty(wire.ID, wire.MongoID, wire.UserID)
	id.ArabicName = wire.ArabicName
	id.EnglishName = wire.EnglishName
	id.Phone = wire.Phone
	id.Role = wire.Role
	id.Status = wire.Status
	id.ProfileImageURL = wire.ProfileImageURL

	id.Branch = wire.BranchID
	if id.Branch.IsZero() {
		id.Branch = wire.Branch
	}

	id.Languages = decodeLanguages(wire)
	return nil
}

// decodeLanguages keeps only well-formed proficiency entries and folds the
// legacy single language/level pair into the list shape.
func decodeLanguages(wire identityWire) []LanguageProficiency {
	var languages []LanguageProficiency
	for _, raw := range wire.Languages {
		var entry LanguageProficiency
		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}
		if strings.TrimSpace(entry.Language) == "" || strings.TrimSpace(entry.Level) == "" {
			continue
		}
		languages = append(languages, entry)
	}
	if len(languages) == 0 && wire.Language != "" && wire.Level != "" {
		languages = []LanguageProficiency{{Language: wire.Language, Level: wire.Level}}
	}
	return languages
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
