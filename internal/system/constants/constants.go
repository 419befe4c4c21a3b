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

package constants

// Storage slots. The session user slot is fixed: exactly one identity record
// is cached at a time, keyed by slot and not by user id.
const (
	SessionUserSlot = "session_user"
	DeviceIDSlot    = "device_id"
)

// Backend endpoint paths.
const (
	RegistrationPath = "/registration"
	FindByPhonePath  = "/users/find-by-phone/"
	SendCodePath     = "/auth/send-code"
	VerifyCodePath   = "/auth/verify-code"
	LanguagesPath    = "/languages"
	BranchesPath     = "/branches"
	LatestNewsPath   = "/news/latest"
)

// Catalog cache keys.
const (
	LanguageCatalogCacheKey = "catalog:languages"
	BranchCatalogCacheKey   = "catalog:branches"
)

// User roles. The backend never migrated these off the legacy upper-case
// vocabulary.
var UserRoles = []string{"STUDENT", "TEACHER", "ADMIN"}
