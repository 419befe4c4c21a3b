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
	"net/url"

	"github.com/wso2/identity-registration-client/internal/profile/model"
	registration "github.com/wso2/identity-registration-client/internal/registration/model"
	"github.com/wso2/identity-registration-client/internal/system/constants"
	errors2 "github.com/wso2/identity-registration-client/internal/system/errors"
	"github.com/wso2/identity-registration-client/internal/system/httpclient"
	"github.com/wso2/identity-registration-client/internal/system/log"
)

// RemoteService wraps the registration backend's user-facing operations.
type RemoteService struct {
	client *httpclient.Client
}

// NewRemoteService creates a RemoteService over the given backend client.
func NewRemoteService(client *httpclient.Client) *RemoteService {
	return &RemoteService{client: client}
}

// Register creates a new registration and returns the canonical record. A
// response without a record is a failure; only lookups may come back empty.
func (s *RemoteService) Register(ctx context.Context, payload registration.Payload) (*model.Identity, error) {

	raw, err := s.client.DoJSON(ctx, http.MethodPost, constants.RegistrationPath, payload)
	if err != nil {
		return nil, errors2.NewServerError(errors2.REGISTER_FAILED, err)
	}

	identity, err := decodeIdentity(raw)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, errors2.NewClientErrorWithoutCode(errors2.REGISTER_FAILED)
	}
	return identity, nil
}

// Update patches an existing registration and returns the updated record.
func (s *RemoteService) Update(ctx context.Context, userID string, payload registration.Payload) (*model.Identity, error) {

	path := constants.RegistrationPath + "/" + url.PathEscape(userID)
	raw, err := s.client.DoJSON(ctx, http.MethodPatch, path, payload)
	if err != nil {
		return nil, errors2.NewServerError(errors2.UPDATE_FAILED, err)
	}

	identity, err := decodeIdentity(raw)
	if err != nil {
		return nil, err
	}
	if identity == nil {
		return nil, errors2.NewClientErrorWithoutCode(errors2.UPDATE_FAILED)
	}
	return identity, nil
}

// FindByPhone looks up the canonical record for a phone number. A lookup
// miss returns (nil, nil); only transport or decode failures are errors.
func (s *RemoteService) FindByPhone(ctx context.Context, phone string) (*model.Identity, error) {

	raw, err := s.client.DoJSON(ctx, http.MethodGet, constants.FindByPhonePath+url.PathEscape(phone), nil)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	identity, err := decodeIdentity(raw)
	if err != nil {
		return nil, err
	}
	// Some backend versions answer a lookup miss with a sentinel record
	// instead of a 404.
	if identity != nil && identity.Status == "not_found" {
		return nil, nil
	}
	return identity, nil
}

// SendCode requests an OTP for the given phone number.
func (s *RemoteService) SendCode(ctx context.Context, phone string) error {

	raw, err := s.client.DoJSON(ctx, http.MethodPost, constants.SendCodePath, map[string]string{"phone": phone})
	if err != nil {
		return errors2.NewServerError(errors2.SEND_CODE_FAILED, err)
	}
	// A 404 body is nil; no code was dispatched.
	if raw == nil {
		return errors2.NewClientErrorWithoutCode(errors2.SEND_CODE_FAILED)
	}

	var result struct {
		Success *bool `json:"success"`
	}
	if err := json.Unmarshal(raw, &result); err == nil && result.Success != nil && !*result.Success {
		return errors2.NewClientErrorWithoutCode(errors2.SEND_CODE_FAILED)
	}
	return nil
}

// VerifyCode exchanges phone and code for the canonical record of the
// authenticated user.
func (s *RemoteService) VerifyCode(ctx context.Context, phone, code string) (*model.Identity, error) {

	body := map[string]string{"phone": phone, "code": code}
	raw, err := s.client.DoJSON(ctx, http.MethodPost, constants.VerifyCodePath, body)
	if err != nil {
		return nil, errors2.NewServerError(errors2.VERIFY_CODE_FAILED, err)
	}
	if raw == nil {
		return nil, errors2.NewClientErrorWithoutCode(errors2.VERIFY_CODE_FAILED)
	}

	identity, err := decodeIdentity(raw)
	if err != nil {
		return nil, err
	}
	if identity == nil || identity.ID == "" {
		log.GetLogger().Debug("Verify-code response carried no user record")
		return nil, errors2.NewClientErrorWithoutCode(errors2.VERIFY_CODE_FAILED)
	}
	return identity, nil
}

func decodeIdentity(raw json.RawMessage) (*model.Identity, error) {
	record := httpclient.UnwrapRecord(raw)
	if len(record) == 0 {
		return nil, nil
	}

	var identity model.Identity
	if err := json.Unmarshal(record, &identity); err != nil {
		return nil, errors2.NewServerError(errors2.UNMARSHAL_JSON, err)
	}
	return &identity, nil
}
