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
	"testing"

	"github.com/wso2/identity-registration-client/internal/profile/model"
)

func Test_StatusMessageKey(t *testing.T) {

	tests := []struct {
		status model.RegistrationStatus
		want   string
	}{
		{model.StatusNotRegistered, NotRegisteredMsgKey},
		{model.StatusPending, UnderReviewMsgKey},
		{model.StatusApproved, ApprovedMsgKey},
		{model.StatusCanceled, RejectedMsgKey},
		{model.StatusUnknown, UnknownMsgKey},
		{model.StatusError, CheckErrorMsgKey},
		{model.RegistrationStatus(""), NotLoggedInMsgKey},
		{model.RegistrationStatus("bogus"), NotLoggedInMsgKey},
	}

	for _, tc := range tests {
		if got := StatusMessageKey(tc.status); got != tc.want {
			t.Errorf("StatusMessageKey(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}
