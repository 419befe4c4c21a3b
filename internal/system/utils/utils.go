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

package utils

import (
	"regexp"
	"strings"
)

var (
	arabicNameRegex  = regexp.MustCompile(`^[\p{Arabic}\s]+$`)
	englishNameRegex = regexp.MustCompile(`^[A-Za-z\s]+$`)
	phoneRegex       = regexp.MustCompile(`^\+[1-9][0-9]{7,14}$`)
	otpCodeRegex     = regexp.MustCompile(`^[0-9]{4,6}$`)
)

// IsArabicName reports whether the value consists of Arabic-script
// characters and spaces only.
func IsArabicName(value string) bool {
	return arabicNameRegex.MatchString(strings.TrimSpace(value))
}

// IsEnglishName reports whether the value consists of Latin letters and
// spaces only.
func IsEnglishName(value string) bool {
	return englishNameRegex.MatchString(strings.TrimSpace(value))
}

// IsValidPhone reports whether the value is a plausible E.164 international
// phone number.
func IsValidPhone(value string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(value))
}

// IsValidOTPCode reports whether the value is a 4 to 6 digit numeric code.
func IsValidOTPCode(value string) bool {
	return otpCodeRegex.MatchString(strings.TrimSpace(value))
}
