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

import "github.com/wso2/identity-registration-client/internal/profile/model"

// Translation message keys for the UI-facing status line. The states are
// terminal from the UI's perspective; re-entering the screen re-runs
// reconciliation, which may move the status forward or backward.
const (
	NotRegisteredMsgKey = "notRegisteredMessage"
	UnderReviewMsgKey   = "registrationUnderReviewMessage"
	ApprovedMsgKey      = "registrationApprovedMessage"
	RejectedMsgKey      = "registrationRejectedMessage"
	UnknownMsgKey       = "statusUnknownMessage"
	CheckErrorMsgKey    = "statusCheckError"
	NotLoggedInMsgKey   = "notLoggedIn"
)

// StatusMessageKey maps a registration status to its translation key. It is
// total: any value outside the six defined states, including the zero value
// before reconciliation has run, yields the not-logged-in default.
func StatusMessageKey(status model.RegistrationStatus) string {
	switch status {
	case model.StatusNotRegistered:
		return NotRegisteredMsgKey
	case model.StatusPending:
		return UnderReviewMsgKey
	case model.StatusApproved:
		return ApprovedMsgKey
	case model.StatusCanceled:
		return RejectedMsgKey
	case model.StatusUnknown:
		return UnknownMsgKey
	case model.StatusError:
		return CheckErrorMsgKey
	default:
		return NotLoggedInMsgKey
	}
}
