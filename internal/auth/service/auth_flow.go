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
	"sync"

	profileModel "github.com/wso2/identity-registration-client/internal/profile/model"
	profileService "github.com/wso2/identity-registration-client/internal/profile/service"
	errors2 "github.com/wso2/identity-registration-client/internal/system/errors"
	"github.com/wso2/identity-registration-client/internal/system/log"
	"github.com/wso2/identity-registration-client/internal/system/utils"
)

// State is the OTP flow state.
type State string

const (
	StateIdle     State = "idle"
	StateCodeSent State = "code_sent"
)

// CodeSender is the slice of the remote service the flow depends on.
type CodeSender interface {
	SendCode(ctx context.Context, phone string) error
	VerifyCode(ctx context.Context, phone, code string) (*profileModel.Identity, error)
}

// SessionAdopter installs a verified identity into the profile pipeline.
type SessionAdopter interface {
	Adopt(ctx context.Context, identity *profileModel.Identity) profileService.Session
}

// Flow is the OTP sign-in state machine over idle and code_sent.
//
// A code is valid only for the phone number it was issued against, so any
// edit to the phone while a code is pending is an explicit transition back
// to idle that also clears the entered code. Failures at either step
// surface an error and leave the state unchanged; the user re-submits
// manually.
type Flow struct {
	remote  CodeSender
	adopter SessionAdopter

	mu    sync.Mutex
	state State
	phone string
	code  string
}

// NewFlow creates an OTP flow in the idle state.
func NewFlow(remote CodeSender, adopter SessionAdopter) *Flow {
	return &Flow{
		remote:  remote,
		adopter: adopter,
		state:   StateIdle,
	}
}

// State returns the current flow state.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Code returns the currently entered code.
func (f *Flow) Code() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.code
}

// PhoneChanged records an edit to the phone field. While a code is pending
// this resets the flow to idle and clears the code.
func (f *Flow) PhoneChanged(phone string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.phone = phone
	if f.state == StateCodeSent {
		log.GetLogger().Debug("Phone edited after code was sent, resetting OTP flow")
		f.state = StateIdle
		f.code = ""
	}
}

// EnterCode records the code the user typed without submitting it.
func (f *Flow) EnterCode(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.code = code
}

// SubmitPhone validates the phone number and requests an OTP. On success
// the flow moves to code_sent.
func (f *Flow) SubmitPhone(ctx context.Context) error {
	f.mu.Lock()
	phone := f.phone
	f.mu.Unlock()

	if !utils.IsValidPhone(phone) {
		return errors2.NewClientErrorWithoutCode(errors2.INVALID_PHONE)
	}

	if err := f.remote.SendCode(ctx, phone); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	// The phone may have been edited while the request was in flight; a
	// code for the old number must not arm verification for the new one.
	if f.phone != phone {
		return nil
	}
	f.state = StateCodeSent
	return nil
}

// SubmitCode verifies the entered code against the phone it was issued for.
// On success the returned identity is adopted into the profile session and
// the flow exits back to idle.
func (f *Flow) SubmitCode(ctx context.Context) (profileService.Session, error) {
	f.mu.Lock()
	state, phone, code := f.state, f.phone, f.code
	f.mu.Unlock()

	if state != StateCodeSent {
		return profileService.Session{}, errors2.NewClientErrorWithoutCode(errors2.CODE_NOT_SENT)
	}
	if !utils.IsValidOTPCode(code) {
		return profileService.Session{}, errors2.NewClientErrorWithoutCode(errors2.INVALID_CODE_FORMAT)
	}

	identity, err := f.remote.VerifyCode(ctx, phone, code)
	if err != nil {
		return profileService.Session{}, err
	}

	session := f.adopter.Adopt(ctx, identity)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateIdle
	f.code = ""
	return session, nil
}
