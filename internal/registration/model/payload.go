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
	profile "github.com/wso2/identity-registration-client/internal/profile/model"
)

// Payload is the submission body shared by the create (register) and update
// (patch) operations. The caller picks the operation based on whether a
// prior-session user id is known.
type Payload struct {
	ArabicName      string                        `json:"arabicName"`
	EnglishName     string                        `json:"englishName"`
	Phone           string                        `json:"phone"`
	Role            string                        `json:"role"`
	BranchID        string                        `json:"branchId"`
	Languages       []profile.LanguageProficiency `json:"languages"`
	Status          string                        `json:"status,omitempty"`
	ProfileImageURL string                        `json:"profileImageUrl"`
}
