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
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	profileModel "github.com/wso2/identity-registration-client/internal/profile/model"
	errors2 "github.com/wso2/identity-registration-client/internal/system/errors"
)

const badgeValidity = 24 * time.Hour

// Claims is the payload rendered into the member QR badge.
type Claims struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
	Branch string `json:"branch"`
	jwt.RegisteredClaims
}

// BadgeService issues and verifies QR badge tokens. Tokens are signed with
// the device secret, so a badge only verifies on the device that issued it.
type BadgeService struct {
	secret []byte
	now    func() time.Time
}

// NewBadgeService creates a BadgeService keyed with the device secret.
func NewBadgeService(deviceSecret string) *BadgeService {
	return &BadgeService{
		secret: []byte(deviceSecret),
		now:    time.Now,
	}
}

// Issue signs a badge token for an approved registration. Any other status
// is rejected; a pending or rejected member has no badge to show.
func (s *BadgeService) Issue(identity *profileModel.Identity) (string, error) {

	if identity == nil || profileModel.ParseStatus(identity.Status) != profileModel.StatusApproved {
		return "", errors2.NewClientErrorWithoutCode(errors2.BADGE_NOT_APPROVED)
	}

	issuedAt := s.now()
	claims := Claims{
		Name:   identity.EnglishName,
		Phone:  identity.Phone,
		Role:   identity.Role,
		Branch: identity.Branch.Display(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(badgeValidity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors2.NewServerError(errors2.BADGE_SIGN, err)
	}
	return signed, nil
}

// Verify parses and validates a badge token and returns its claims.
func (s *BadgeService) Verify(token string) (*Claims, error) {

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, errors2.NewClientErrorWithoutCode(errors2.BADGE_INVALID)
	}
	return claims, nil
}
