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

package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wso2/identity-registration-client/internal/system/config"
	errors2 "github.com/wso2/identity-registration-client/internal/system/errors"
	"github.com/wso2/identity-registration-client/internal/system/log"
)

// Client is the outbound HTTP client for the registration backend.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a Client from the backend configuration.
func NewClient(cfg config.BackendConfig) *Client {

	log.GetLogger().Info("Creating backend client with base URL: " + cfg.BaseURL)

	tr := &http.Transport{
		TLSHandshakeTimeout: 10 * time.Second,
		IdleConnTimeout:     60 * time.Second,
		MaxIdleConns:        100,
		MaxConnsPerHost:     100,
	}
	return &Client{
		BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		HTTPClient: &http.Client{
			Transport: tr,
			Timeout:   time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// DoJSON performs an HTTP request with an optional JSON body and returns the
// raw response body. A 404 response yields (nil, nil): lookup misses are not
// errors for this backend, callers map them to domain defaults.
func (c *Client) DoJSON(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {

	logger := log.GetLogger()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, errors2.NewServerError(errors2.MARSHAL_JSON, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, errors2.NewServerError(errors2.REQUEST_FAILED, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		errorMsg := fmt.Sprintf("Request %s %s failed", method, path)
		logger.Debug(errorMsg, log.Error(err))
		return nil, errors2.NewServerError(errors2.ErrorMessage{
			Code:        errors2.REQUEST_FAILED.Code,
			Message:     errors2.REQUEST_FAILED.Message,
			Description: errorMsg,
		}, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors2.NewServerError(errors2.RESPONSE_DECODE, err)
	}

	if resp.StatusCode == http.StatusNotFound {
		logger.Debug(fmt.Sprintf("Backend returned 404 for %s %s", method, path))
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorMsg := fmt.Sprintf("Backend returned status %d for %s %s: %s",
			resp.StatusCode, method, path, strings.TrimSpace(string(respBody)))
		logger.Debug(errorMsg)
		return nil, errors2.NewClientError(errors2.ErrorMessage{
			Code:        errors2.BAD_REQUEST.Code,
			Message:     errors2.BAD_REQUEST.Message,
			Description: errorMsg,
		}, resp.StatusCode)
	}

	return respBody, nil
}

// UnwrapList normalizes a list response envelope. The body is probed for
// `.data`, then `.items`, then a bare array, in that priority; anything else
// is treated as an empty list. This probing order is a fixed consumer
// contract with the backend, not a convenience.
func UnwrapList(raw json.RawMessage) json.RawMessage {

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return json.RawMessage("[]")
	}

	if trimmed[0] == '{' {
		var envelope struct {
			Data  json.RawMessage `json:"data"`
			Items json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err == nil {
			if isArray(envelope.Data) {
				return envelope.Data
			}
			if isArray(envelope.Items) {
				return envelope.Items
			}
		}
		return json.RawMessage("[]")
	}

	if trimmed[0] == '[' {
		return trimmed
	}
	return json.RawMessage("[]")
}

// UnwrapRecord normalizes a single-record response envelope: `{user: ...}`
// is probed before treating the body as a bare record.
func UnwrapRecord(raw json.RawMessage) json.RawMessage {

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}

	var envelope struct {
		User json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err == nil {
		inner := bytes.TrimSpace(envelope.User)
		if len(inner) > 0 && inner[0] == '{' {
			return inner
		}
	}
	return trimmed
}

func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}
