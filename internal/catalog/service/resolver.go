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
	"strings"

	"github.com/wso2/identity-registration-client/internal/catalog/model"
)

// Catalog resolution is lookup only: a miss returns nil and the caller falls
// back to displaying the raw reference verbatim. Nothing here errors out.
//
// Matching order is fixed: direct id (and branch code) equality first, then
// localized-label equality, first match wins. All comparisons are trimmed
// and case-insensitive.

// ResolveLanguage finds the language catalog entry a reference points at.
func ResolveLanguage(catalog []model.LanguageEntry, ref model.Reference) *model.LanguageEntry {
	if ref.IsZero() {
		return nil
	}

	if ref.Value == "" {
		// Object reference: id wins over name.
		for i := range catalog {
			if ref.ID != "" && catalog[i].ID == ref.ID {
				return &catalog[i]
			}
		}
		for i := range catalog {
			if ref.Name != "" && tokenEqual(catalog[i].Label.En, ref.Name) {
				return &catalog[i]
			}
		}
		return nil
	}

	for i := range catalog {
		if tokenEqual(catalog[i].ID, ref.Value) {
			return &catalog[i]
		}
	}
	for i := range catalog {
		if tokenEqual(catalog[i].Label.En, ref.Value) || tokenEqual(catalog[i].Label.Ar, ref.Value) {
			return &catalog[i]
		}
	}
	return nil
}

// ResolveLevel resolves a level reference in two stages: the language first,
// then the level against that language's own sub-catalog. Level ids are not
// globally unique, so a flat lookup would be wrong.
func ResolveLevel(catalog []model.LanguageEntry, langRef, levelRef model.Reference) *model.LevelEntry {
	language := ResolveLanguage(catalog, langRef)
	if language == nil || levelRef.IsZero() {
		return nil
	}

	levels := language.Levels
	for i := range levels {
		if tokenEqual(levels[i].ID, levelRef.Display()) {
			return &levels[i]
		}
	}
	for i := range levels {
		if tokenEqual(levels[i].En, levelRef.Display()) || tokenEqual(levels[i].Ar, levelRef.Display()) {
			return &levels[i]
		}
	}
	return nil
}

// ResolveBranch finds the branch catalog entry a reference points at. Branch
// references additionally match on the short code.
func ResolveBranch(catalog []model.BranchEntry, ref model.Reference) *model.BranchEntry {
	if ref.IsZero() {
		return nil
	}

	if ref.Value == "" {
		for i := range catalog {
			if ref.ID != "" && catalog[i].ID == ref.ID {
				return &catalog[i]
			}
		}
		for i := range catalog {
			if ref.Name != "" && tokenEqual(catalog[i].Name.En, ref.Name) {
				return &catalog[i]
			}
		}
		return nil
	}

	for i := range catalog {
		if tokenEqual(catalog[i].ID, ref.Value) || (catalog[i].Code != "" && tokenEqual(catalog[i].Code, ref.Value)) {
			return &catalog[i]
		}
	}
	for i := range catalog {
		if tokenEqual(catalog[i].Name.En, ref.Value) || tokenEqual(catalog[i].Name.Ar, ref.Value) {
			return &catalog[i]
		}
	}
	return nil
}

// LanguageLabel returns the localized label for a language reference, or the
// raw reference when no entry matches.
func LanguageLabel(catalog []model.LanguageEntry, ref model.Reference, appLanguage string) string {
	if match := ResolveLanguage(catalog, ref); match != nil {
		return match.Label.In(appLanguage)
	}
	return ref.Display()
}

// LevelLabel returns the localized label for a level reference, or the raw
// reference when either stage misses.
func LevelLabel(catalog []model.LanguageEntry, langRef, levelRef model.Reference, appLanguage string) string {
	if match := ResolveLevel(catalog, langRef, levelRef); match != nil {
		if appLanguage == "ar" && match.Ar != "" {
			return match.Ar
		}
		return match.En
	}
	return levelRef.Display()
}

// BranchLabel returns the localized label for a branch reference, or the raw
// reference when no entry matches.
func BranchLabel(catalog []model.BranchEntry, ref model.Reference, appLanguage string) string {
	if match := ResolveBranch(catalog, ref); match != nil {
		return match.Name.In(appLanguage)
	}
	return ref.Display()
}

func tokenEqual(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}
