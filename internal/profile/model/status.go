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

import "strings"

// RegistrationStatus is the UI-facing access-control state derived from the
// raw status vocabularies the backend has used over time.
type RegistrationStatus string

const (
	StatusNotRegistered RegistrationStatus = "not_registered"
	StatusPending       RegistrationStatus = "pending"
	StatusApproved      RegistrationStatus = "approved"
	StatusCanceled      RegistrationStatus = "canceled"
	StatusUnknown       RegistrationStatus = "unknown"
	StatusError         RegistrationStatus = "error"
)

// ParseStatus maps a raw status string to exactly one RegistrationStatus.
// It is total: every input, including the empty string, yields a defined
// state and it never fails. An empty status on a server record means a
// partially-provisioned backend record, not an error.
func ParseStatus(raw string) RegistrationStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return StatusNotRegistered
	case "not_registered", "not_found":
		return StatusNotRegistered
	case "pending":
		return StatusPending
	case "approved":
		return StatusApproved
	case "canceled":
		return StatusCanceled
	case "unknown":
		return StatusUnknown
	case "error":
		return StatusError

	// Legacy vocabulary, still emitted for records registered before the
	// status migration.
	case "active":
		return StatusApproved
	case "suspended":
		return StatusCanceled

	default:
		return StatusUnknown
	}
}
