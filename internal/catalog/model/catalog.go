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

import "encoding/json"

// LocalizedText is a pair of English and Arabic labels.
type LocalizedText struct {
	En string `json:"en"`
	Ar string `json:"ar"`
}

// In returns the label for the given app language, falling back to English.
func (t LocalizedText) In(appLanguage string) string {
	if appLanguage == "ar" && t.Ar != "" {
		return t.Ar
	}
	return t.En
}

// LevelEntry is a proficiency level inside a language's own level
// sub-catalog. Level ids are not guaranteed globally unique across
// languages.
type LevelEntry struct {
	ID string `json:"id"`
	En string `json:"en"`
	Ar string `json:"ar"`
}

// LanguageEntry is one entry of the language catalog.
type LanguageEntry struct {
	ID     string        `json:"id"`
	Label  LocalizedText `json:"label"`
	Levels []LevelEntry  `json:"levels"`
}

// BranchEntry is one entry of the branch catalog.
type BranchEntry struct {
	ID   string        `json:"id"`
	Name LocalizedText `json:"name"`
	Code string        `json:"code,omitempty"`
}

// Older backend payloads use `_id` for ids and `language` for the language
// label. Both shapes remain in circulation, so every entry type accepts both
// on decode.

func (e *LevelEntry) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID      string `json:"id"`
		MongoID string `json:"_id"`
		En      string `json:"en"`
		Ar      string `json:"ar"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	e.ID = firstNonEmpty(wire.ID, wire.MongoID)
	e.En = wire.En
	e.Ar = wire.Ar
	return nil
}

func (e *LanguageEntry) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID       string         `json:"id"`
		MongoID  string         `json:"_id"`
		Label    *LocalizedText `json:"label"`
		Language *LocalizedText `json:"language"`
		Levels   []LevelEntry   `json:"levels"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	e.ID = firstNonEmpty(wire.ID, wire.MongoID)
	if wire.Label != nil {
		e.Label = *wire.Label
	} else if wire.Language != nil {
		e.Label = *wire.Language
	}
	e.Levels = wire.Levels
	return nil
}

func (e *BranchEntry) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID      string        `json:"id"`
		MongoID string        `json:"_id"`
		Name    LocalizedText `json:"name"`
		Code    string        `json:"code"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	e.ID = firstNonEmpty(wire.ID, wire.MongoID)
	e.Name = wire.Name
	e.Code = wire.Code
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
