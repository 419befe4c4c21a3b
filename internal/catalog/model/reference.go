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
	"strings"
)

// Reference identifies a catalog entry indirectly. The backend schema
// evolved from raw string labels to id-referenced catalogs without a
// migration path, so the same stored field may carry a plain string (an id,
// an English label, an Arabic label or a branch code) or a nested object
// with an id and a localized name. Reference is the single normalization
// point for both shapes; matching logic never branches on wire types
// anywhere else.
type Reference struct {
	// Value is set when the reference was a plain string.
	Value string
	// ID and Name are set when the reference was an object.
	ID   string
	Name string

	raw json.RawMessage
}

// StringRef builds a Reference from a plain string value.
func StringRef(value string) Reference {
	return Reference{Value: value}
}

// ObjectRef builds a Reference carrying an id and, optionally, an English
// name.
func ObjectRef(id, name string) Reference {
	return Reference{ID: id, Name: name}
}

// NormalizeReference converts a decoded JSON value (string or object) into a
// Reference. Unknown shapes normalize to the zero Reference.
func NormalizeReference(value interface{}) Reference {
	switch v := value.(type) {
	case string:
		return StringRef(v)
	case Reference:
		return v
	case map[string]interface{}:
		ref := Reference{}
		if id, ok := v["_id"].(string); ok {
			ref.ID = id
		} else if id, ok := v["id"].(string); ok {
			ref.ID = id
		}
		switch name := v["name"].(type) {
		case string:
			ref.Name = name
		case map[string]interface{}:
			if en, ok := name["en"].(string); ok {
				ref.Name = en
			}
		}
		return ref
	default:
		return Reference{}
	}
}

// IsZero reports whether the reference carries nothing to match on.
func (r Reference) IsZero() bool {
	return strings.TrimSpace(r.Value) == "" && r.ID == "" && r.Name == ""
}

// Display returns the verbatim representation shown when no catalog entry
// matches. Resolution misses are never hidden; the raw reference is the
// label substitute.
func (r Reference) Display() string {
	if strings.TrimSpace(r.Value) != "" {
		return r.Value
	}
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

func (r *Reference) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*r = Reference{}
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		*r = StringRef(asString)
		r.raw = append(json.RawMessage(nil), data...)
		return nil
	}

	var asObject map[string]interface{}
	if err := json.Unmarshal(data, &asObject); err != nil {
		return err
	}
	*r = NormalizeReference(asObject)
	r.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON re-emits the wire form the reference was decoded from, so a
// cached record round-trips without rewriting fields this client does not
// own.
func (r Reference) MarshalJSON() ([]byte, error) {
	if len(r.raw) > 0 {
		return r.raw, nil
	}
	if r.ID != "" || r.Name != "" {
		out := map[string]string{}
		if r.ID != "" {
			out["_id"] = r.ID
		}
		if r.Name != "" {
			out["name"] = r.Name
		}
		return json.Marshal(out)
	}
	return json.Marshal(r.Value)
}
