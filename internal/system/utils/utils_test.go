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

import "testing"

func Test_IsArabicName(t *testing.T) {
	valid := []string{"أحمد", "أحمد خليل", "محمد علي"}
	invalid := []string{"", "Ahmad", "أحمد1", "أحمد Ahmad"}

	for _, name := range valid {
		if !IsArabicName(name) {
			t.Errorf("IsArabicName(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if IsArabicName(name) {
			t.Errorf("IsArabicName(%q) = true, want false", name)
		}
	}
}

func Test_IsEnglishName(t *testing.T) {
	valid := []string{"Ahmad", "Ahmad Khalil"}
	invalid := []string{"", "أحمد", "Ahmad1", "Ahmad_Khalil"}

	for _, name := range valid {
		if !IsEnglishName(name) {
			t.Errorf("IsEnglishName(%q) = false, want true", name)
		}
	}
	for _, name := range invalid {
		if IsEnglishName(name) {
			t.Errorf("IsEnglishName(%q) = true, want false", name)
		}
	}
}

func Test_IsValidPhone(t *testing.T) {
	valid := []string{"+96170123456", "+14155550123"}
	invalid := []string{"", "70123456", "+0123456789", "+961", "96170123456", "+961 70123456"}

	for _, phone := range valid {
		if !IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = false, want true", phone)
		}
	}
	for _, phone := range invalid {
		if IsValidPhone(phone) {
			t.Errorf("IsValidPhone(%q) = true, want false", phone)
		}
	}
}

func Test_IsValidOTPCode(t *testing.T) {
	valid := []string{"1234", "12345", "123456", "0000"}
	invalid := []string{"", "123", "1234567", "12ab", " 1234"}

	for _, code := range valid {
		if !IsValidOTPCode(code) {
			t.Errorf("IsValidOTPCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidOTPCode(code) {
			t.Errorf("IsValidOTPCode(%q) = true, want false", code)
		}
	}
}
