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

	"github.com/stretchr/testify/require"
	catalogModel "github.com/wso2/identity-registration-client/internal/catalog/model"
	profileModel "github.com/wso2/identity-registration-client/internal/profile/model"
	profileService "github.com/wso2/identity-registration-client/internal/profile/service"
	registration "github.com/wso2/identity-registration-client/internal/registration/model"
	"github.com/wso2/identity-registration-client/internal/system/config"
	"github.com/wso2/identity-registration-client/internal/system/httpclient"
)

var testDefaults = config.RegistrationConfig{DefaultLanguage: "en", DefaultLevel: "beginner"}

func validForm() Form {
	return Form{
		ArabicName:  "أحمد خليل",
		EnglishName: "Ahmad Khalil",
		Phone:       "+96170123456",
		Role:        "STUDENT",
		BranchID:    "b1",
		Languages:   []profileModel.LanguageProficiency{{Language: "en", Level: "beginner"}},
	}
}

func testBranches() []catalogModel.BranchEntry {
	return []catalogModel.BranchEntry{
		{ID: "b1", Name: catalogModel.LocalizedText{En: "Downtown"}, Code: "DT"},
	}
}

type fakeSubmitter struct {
	registered *registration.Payload
	updated    *registration.Payload
	updatedID  string
	identity   *profileModel.Identity
	err        error
}

func (f *fakeSubmitter) Register(ctx context.Context, payload registration.Payload) (*profileModel.Identity, error) {
	f.registered = &payload
	return f.identity, f.err
}

func (f *fakeSubmitter) Update(ctx context.Context, userID string, payload registration.Payload) (*profileModel.Identity, error) {
	f.updatedID = userID
	f.updated = &payload
	return f.identity, f.err
}

type fakeAdopter struct {
	adopted *profileModel.Identity
}

func (f *fakeAdopter) Adopt(ctx context.Context, identity *profileModel.Identity) profileService.Session {
	f.adopted = identity
	return profileService.Session{Identity: identity, Status: profileModel.ParseStatus(identity.Status)}
}

func Test_Form_Validate(t *testing.T) {

	branches := testBranches()

	tests := []struct {
		name      string
		mutate    func(f *Form)
		wantField string
		wantKey   string
	}{
		{"MissingArabicName", func(f *Form) { f.ArabicName = "  " }, "arabicName", "arabicNameRequired"},
		{"LatinInArabicName", func(f *Form) { f.ArabicName = "Ahmad" }, "arabicName", "arabicNameArabicOnly"},
		{"MissingEnglishName", func(f *Form) { f.EnglishName = "" }, "englishName", "englishNameRequired"},
		{"ArabicInEnglishName", func(f *Form) { f.EnglishName = "أحمد" }, "englishName", "englishNameEnglishOnly"},
		{"MissingPhone", func(f *Form) { f.Phone = "" }, "phone", "phoneRequired"},
		{"LocalPhoneFormat", func(f *Form) { f.Phone = "70123456" }, "phone", "phoneInvalid"},
		{"UnknownRole", func(f *Form) { f.Role = "VISITOR" }, "role", "roleRequired"},
		{"MissingBranch", func(f *Form) { f.BranchID = "" }, "branch", "branchRequired"},
		{"BranchNotInCatalog", func(f *Form) { f.BranchID = "nowhere" }, "branch", "branchInvalid"},
		{"NoCompleteLanguageEntry", func(f *Form) {
			f.Languages = []profileModel.LanguageProficiency{{Language: "en"}}
		}, "languages", "languagesRequired"},
		{"EmptyLanguagesList", func(f *Form) { f.Languages = nil }, "languages", "languagesRequired"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)

			errs := form.Validate(branches)
			require.NotNil(t, errs)
			require.Equal(t, tc.wantKey, errs[tc.wantField])
		})
	}
}

func Test_FormService_Submit_BackendWithoutRegistrationRoute(t *testing.T) {

	// A backend missing the registration route answers 404; submission must
	// fail cleanly without touching the session.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	remote := profileService.NewRemoteService(
		httpclient.NewClient(config.BackendConfig{BaseURL: srv.URL, TimeoutSeconds: 5}))
	adopter := &fakeAdopter{}
	svc := NewFormService(remote, adopter, testDefaults)

	_, err := svc.Submit(context.Background(), validForm(), testBranches())
	require.Error(t, err)
	require.Nil(t, adopter.adopted)
}

func Test_Form_Validate_AcceptsValidForm(t *testing.T) {

	require.Nil(t, validForm().Validate(testBranches()))

	// Branch given by code and lower-case role are both accepted.
	form := validForm()
	form.BranchID = "dt"
	form.Role = "student"
	require.Nil(t, form.Validate(testBranches()))

	// Without a fetched catalog the branch value is accepted verbatim.
	form = validForm()
	form.BranchID = "anything"
	require.Nil(t, form.Validate(nil))
}

func Test_Form_Normalize(t *testing.T) {

	form := Form{
		ArabicName:  " أحمد ",
		EnglishName: " Ahmad ",
		Phone:       " +96170123456 ",
		Role:        "STUDENT",
		BranchID:    " b1 ",
		Languages: []profileModel.LanguageProficiency{
			{Language: "en", Level: "beginner"},
			{Language: "fr", Level: ""},
			{Language: "", Level: "advanced"},
		},
	}

	payload := form.Normalize(testDefaults)
	require.Equal(t, "أحمد", payload.ArabicName)
	require.Equal(t, "Ahmad", payload.EnglishName)
	require.Equal(t, "+96170123456", payload.Phone)
	require.Equal(t, "b1", payload.BranchID)
	require.Equal(t, []profileModel.LanguageProficiency{{Language: "en", Level: "beginner"}}, payload.Languages)
}

func Test_Form_Normalize_SubstitutesExactlyOneDefaultEntry(t *testing.T) {

	form := Form{Languages: []profileModel.LanguageProficiency{{Language: "fr"}, {Level: "advanced"}}}

	payload := form.Normalize(testDefaults)
	require.Equal(t, []profileModel.LanguageProficiency{{Language: "en", Level: "beginner"}}, payload.Languages)
}

func Test_FormService_Submit_Create(t *testing.T) {

	submitter := &fakeSubmitter{identity: &profileModel.Identity{ID: "u9", Phone: "+96170123456", Status: "pending"}}
	adopter := &fakeAdopter{}
	svc := NewFormService(submitter, adopter, testDefaults)

	session, err := svc.Submit(context.Background(), validForm(), testBranches())
	require.NoError(t, err)
	require.Equal(t, profileModel.StatusPending, session.Status)

	require.NotNil(t, submitter.registered)
	require.Equal(t, "pending", submitter.registered.Status)
	require.Nil(t, submitter.updated)
	require.Equal(t, "u9", adopter.adopted.ID)
}

func Test_FormService_Submit_UpdateWhenRecordKnown(t *testing.T) {

	submitter := &fakeSubmitter{identity: &profileModel.Identity{ID: "u9", Status: "approved"}}
	adopter := &fakeAdopter{}
	svc := NewFormService(submitter, adopter, testDefaults)

	form := validForm()
	form.UserID = "u9"

	session, err := svc.Submit(context.Background(), form, testBranches())
	require.NoError(t, err)
	require.Equal(t, profileModel.StatusApproved, session.Status)

	require.Nil(t, submitter.registered)
	require.Equal(t, "u9", submitter.updatedID)
	// Updates never rewrite the status; the backend owns transitions.
	require.Empty(t, submitter.updated.Status)
}

func Test_FormService_Submit_ValidationBlocksNetwork(t *testing.T) {

	submitter := &fakeSubmitter{}
	svc := NewFormService(submitter, &fakeAdopter{}, testDefaults)

	form := validForm()
	form.Phone = "bad"

	_, err := svc.Submit(context.Background(), form, testBranches())
	require.Error(t, err)

	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Contains(t, fieldErrs, "phone")
	require.Nil(t, submitter.registered)
	require.Nil(t, submitter.updated)
}

func Test_FromIdentity_Prefill(t *testing.T) {

	identity := &profileModel.Identity{
		ID:          "u1",
		ArabicName:  "أحمد",
		EnglishName: "Ahmad",
		Phone:       "+96170123456",
		Role:        "STUDENT",
		Branch:      catalogModel.StringRef("b1"),
		Languages:   []profileModel.LanguageProficiency{{Language: "en", Level: "beginner"}},
	}

	form := FromIdentity(identity)
	require.Equal(t, "u1", form.UserID)
	require.Equal(t, "b1", form.BranchID)
	require.Equal(t, identity.Languages, form.Languages)

	require.Equal(t, Form{}, FromIdentity(nil))
}
