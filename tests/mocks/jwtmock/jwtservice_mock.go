/*
 * Copyright (c) 2025, CampusHQ LLC. (https://campushq.io).
 *
 * CampusHQ LLC. licenses this file to you under the Apache License,
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

// Package jwtmock provides a mock implementation of the JWT service for testing.
package jwtmock

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"time"
)

// MockJWTService is a configurable mock implementation of jwt.JWTServiceInterface.
// When MockGenerateJWT is unset, GenerateJWT produces an unsigned but structurally
// valid token whose payload carries the subject and claims, so that payload
// decoding works without a signing key. Verification succeeds by default.
type MockJWTService struct {
	MockInit         func() error
	MockGetPublicKey func() *rsa.PublicKey
	MockGenerateJWT  func(sub, aud, iss string, validityPeriod int64,
		claims map[string]interface{}) (string, int64, error)
	MockVerifyJWT func(jwtToken, expectedAud, expectedIss string) error

	GenerateJWTCalls []struct {
		Sub    string
		Claims map[string]interface{}
	}
	VerifyJWTCalls []string
}

// Init calls the configured mock function or succeeds.
func (m *MockJWTService) Init() error {
	if m.MockInit != nil {
		return m.MockInit()
	}
	return nil
}

// GetPublicKey calls the configured mock function or returns nil.
func (m *MockJWTService) GetPublicKey() *rsa.PublicKey {
	if m.MockGetPublicKey != nil {
		return m.MockGetPublicKey()
	}
	return nil
}

// GenerateJWT calls the configured mock function or builds an unsigned token.
func (m *MockJWTService) GenerateJWT(sub, aud, iss string, validityPeriod int64,
	claims map[string]interface{}) (string, int64, error) {
	m.GenerateJWTCalls = append(m.GenerateJWTCalls, struct {
		Sub    string
		Claims map[string]interface{}
	}{Sub: sub, Claims: claims})

	if m.MockGenerateJWT != nil {
		return m.MockGenerateJWT(sub, aud, iss, validityPeriod, claims)
	}

	iat := time.Now().Unix()
	payload := map[string]interface{}{
		"sub": sub,
		"aud": aud,
		"iss": iss,
		"iat": iat,
		"exp": iat + validityPeriod,
	}
	for key, value := range claims {
		payload[key] = value
	}

	headerJSON, err := json.Marshal(map[string]string{"alg": "RS256", "typ": "JWT"})
	if err != nil {
		return "", 0, err
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", 0, err
	}

	token := base64.RawURLEncoding.EncodeToString(headerJSON) + "." +
		base64.RawURLEncoding.EncodeToString(payloadJSON) + "." +
		base64.RawURLEncoding.EncodeToString([]byte("mock-signature"))
	return token, iat, nil
}

// VerifyJWT calls the configured mock function or succeeds.
func (m *MockJWTService) VerifyJWT(jwtToken, expectedAud, expectedIss string) error {
	m.VerifyJWTCalls = append(m.VerifyJWTCalls, jwtToken)
	if m.MockVerifyJWT != nil {
		return m.MockVerifyJWT(jwtToken, expectedAud, expectedIss)
	}
	return nil
}

// VerifyJWTWithPublicKey succeeds by default.
func (m *MockJWTService) VerifyJWTWithPublicKey(jwtToken string, publicKey *rsa.PublicKey,
	expectedAud, expectedIss string) error {
	return nil
}

// VerifyJWTSignature succeeds by default.
func (m *MockJWTService) VerifyJWTSignature(jwtToken string) error {
	return nil
}

// VerifyJWTSignatureWithPublicKey succeeds by default.
func (m *MockJWTService) VerifyJWTSignatureWithPublicKey(jwtToken string, publicKey *rsa.PublicKey) error {
	return nil
}
