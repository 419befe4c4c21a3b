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
	"sort"
	"strings"

	catalogModel "github.com/wso2/identity-registration-client/internal/catalog/model"
	catalogService "github.com/wso2/identity-registration-client/internal/catalog/service"
	profileModel "github.com/wso2/identity-registration-client/internal/profile/model"
	profileService "github.com/wso2/identity-registration-client/internal/profile/service"
	registration "github.com/wso2/identity-registration-client/internal/registration/model"
	"github.com/wso2/identity-registration-client/internal/system/config"
	"github.com/wso2/identity-registration-client/internal/system/constants"
	"github.com/wso2/identity-registration-client/internal/system/utils"
)

// Form is the editable state of the registration screen. UserID is set when
// a prior session knows the backend record; its presence selects the update
// operation over create.
type Form struct {
	UserID      string
	ArabicName  string
	EnglishName string
	Phone       string
	Role        string
	BranchID    string
	Languages   []profileModel.LanguageProficiency
}

// FieldErrors maps a form field to the message key rendered inline under it.
// Validation failures never reach the network.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for field := range e {
		keys = append(keys, field)
	}
	sort.Strings(keys)
	return "invalid fields: " + strings.Join(keys, ", ")
}

// Submitter is the slice of the remote service the form service depends on.
type Submitter interface {
	Register(ctx context.Context, payload registration.Payload) (*profileModel.Identity, error)
	Update(ctx context.Context, userID string, payload registration.Payload) (*profileModel.Identity, error)
}

// SessionAdopter installs the accepted record into the profile pipeline.
type SessionAdopter interface {
	Adopt(ctx context.Context, identity *profileModel.Identity) profileService.Session
}

// FormService validates, normalizes and submits registration forms.
type FormService struct {
	remote   Submitter
	adopter  SessionAdopter
	defaults config.RegistrationConfig
}

// NewFormService creates a FormService with the configured submission
// defaults.
func NewFormService(remote Submitter, adopter SessionAdopter, defaults config.RegistrationConfig) *FormService {
	return &FormService{
		remote:   remote,
		adopter:  adopter,
		defaults: defaults,
	}
}

// Validate checks every field and returns the per-field message keys, or nil
// when the form is valid. The branch catalog is consulted when available;
// with no catalog fetched the branch value is accepted as-is rather than
// blocking submission offline.
func (f Form) Validate(branches []catalogModel.BranchEntry) FieldErrors {
	errs := FieldErrors{}

	arabic := strings.TrimSpace(f.ArabicName)
	switch {
	case arabic == "":
		errs["arabicName"] = "arabicNameRequired"
	case !utils.IsArabicName(arabic):
		errs["arabicName"] = "arabicNameArabicOnly"
	}

	english := strings.TrimSpace(f.EnglishName)
	switch {
	case english == "":
		errs["englishName"] = "englishNameRequired"
	case !utils.IsEnglishName(english):
		errs["englishName"] = "englishNameEnglishOnly"
	}

	phone := strings.TrimSpace(f.Phone)
	switch {
	case phone == "":
		errs["phone"] = "phoneRequired"
	case !utils.IsValidPhone(phone):
		errs["phone"] = "phoneInvalid"
	}

	if !validRole(f.Role) {
		errs["role"] = "roleRequired"
	}

	branch := strings.TrimSpace(f.BranchID)
	if branch == "" {
		errs["branch"] = "branchRequired"
	} else if len(branches) > 0 && catalogService.ResolveBranch(branches, catalogModel.StringRef(branch)) == nil {
		errs["branch"] = "branchInvalid"
	}

	complete := 0
	for _, entry := range f.Languages {
		if strings.TrimSpace(entry.Language) != "" && strings.TrimSpace(entry.Level) != "" {
			complete++
		}
	}
	if complete == 0 {
		errs["languages"] = "languagesRequired"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Normalize produces the submission payload: all string fields trimmed,
// language entries missing either sub-field dropped, and a single default
// entry substituted when the list would otherwise be empty. A submission
// never carries an empty languages list.
func (f Form) Normalize(defaults config.RegistrationConfig) registration.Payload {
	payload := registration.Payload{
		ArabicName:  strings.TrimSpace(f.ArabicName),
		EnglishName: strings.TrimSpace(f.EnglishName),
		Phone:       strings.TrimSpace(f.Phone),
		Role:        strings.TrimSpace(f.Role),
		BranchID:    strings.TrimSpace(f.BranchID),
	}

	for _, entry := range f.Languages {
		language := strings.TrimSpace(entry.Language)
		level := strings.TrimSpace(entry.Level)
		if language == "" || level == "" {
			continue
		}
		payload.Languages = append(payload.Languages, profileModel.LanguageProficiency{
			Language: language,
			Level:    level,
		})
	}
	if len(payload.Languages) == 0 {
		payload.Languages = []profileModel.LanguageProficiency{{
			Language: defaults.DefaultLanguage,
			Level:    defaults.DefaultLevel,
		}}
	}
	return payload
}

// FromIdentity prefills a form from a previously cached or fetched record.
func FromIdentity(identity *profileModel.Identity) Form {
	if identity == nil {
		return Form{}
	}
	return Form{
		UserID:      identity.ID,
		ArabicName:  identity.ArabicName,
		EnglishName: identity.EnglishName,
		Phone:       identity.Phone,
		Role:        identity.Role,
		BranchID:    identity.Branch.Display(),
		Languages:   identity.Languages,
	}
}

// Submit validates and normalizes the form, performs create or update, and
// adopts the accepted record into the session pipeline.
func (s *FormService) Submit(ctx context.Context, form Form, branches []catalogModel.BranchEntry) (profileService.Session, error) {

	if errs := form.Validate(branches); errs != nil {
		return profileService.Session{}, errs
	}

	payload := form.Normalize(s.defaults)

	var identity *profileModel.Identity
	var err error
	if form.UserID != "" {
		identity, err = s.remote.Update(ctx, form.UserID, payload)
	} else {
		payload.Status = string(profileModel.StatusPending)
		identity, err = s.remote.Register(ctx, payload)
	}
	if err != nil {
		return profileService.Session{}, err
	}

	return s.adopter.Adopt(ctx, identity), nil
}

func validRole(role string) bool {
	for _, known := range constants.UserRoles {
		if strings.EqualFold(strings.TrimSpace(role), known) {
			return true
		}
	}
	return false
}
