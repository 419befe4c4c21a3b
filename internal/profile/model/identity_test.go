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
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Identity_Unmarshal_AlternateIDFields(t *testing.T) {

	tests := []struct {
		name string
		wire string
		want string
	}{
		{"PlainID", `{"id":"u1"}`, "u1"},
		{"MongoID", `{"_id":"u2"}`, "u2"},
		{"UserID", `{"userId":"u3"}`, "u3"},
		{"PlainIDWins", `{"id":"u1","_id":"u2"}`, "u1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var identity Identity
			require.NoError(t, json.Unmarshal([]byte(tc.wire), &identity))
			require.Equal(t, tc.want, identity.ID)
		})
	}
}

func Test_Identity_Unmarshal_BranchShapes(t *testing.T) {

	var identity Identity
	require.NoError(t, json.Unmarshal([]byte(
		`{"id":"u1","branchId":{"_id":"b1","name":{"en":"Downtown"}}}`), &identity))
	require.Equal(t, "b1", identity.Branch.ID)
	require.Equal(t, "Downtown", identity.Branch.Name)

	// `branch` is the fallback key when `branchId` is absent.
	require.NoError(t, json.Unmarshal([]byte(
		`{"id":"u1","branch":"main street"}`), &identity))
	require.Equal(t, "main street", identity.Branch.Value)
}

func Test_Identity_Unmarshal_Languages(t *testing.T) {

	// Malformed and incomplete entries are dropped.
	var identity Identity
	require.NoError(t, json.Unmarshal([]byte(`{
		"id":"u1",
		"languages":[
			{"language":"en","level":"beginner"},
			{"language":"fr"},
			{"language":"","level":"advanced"},
			"not-an-object",
			{"language":"ar","level":"advanced"}
		]
	}`), &identity))
	require.Equal(t, []LanguageProficiency{
		{Language: "en", Level: "beginner"},
		{Language: "ar", Level: "advanced"},
	}, identity.Languages)
}

func Test_Identity_Unmarshal_LegacySingleLanguagePair(t *testing.T) {

	var identity Identity
	require.NoError(t, json.Unmarshal([]byte(
		`{"id":"u1","language":"en","level":"beginner"}`), &identity))
	require.Equal(t, []LanguageProficiency{{Language: "en", Level: "beginner"}}, identity.Languages)

	// The list shape wins over the legacy pair when both are present.
	require.NoError(t, json.Unmarshal([]byte(`{
		"id":"u1","language":"en","level":"beginner",
		"languages":[{"language":"fr","level":"advanced"}]
	}`), &identity))
	require.Equal(t, []LanguageProficiency{{Language: "fr", Level: "advanced"}}, identity.Languages)
}
