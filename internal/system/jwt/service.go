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

// Package jwt provides functionality for generating and managing JWT tokens.
package jwt

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/campushq/campus/internal/system/config"
	"github.com/campushq/campus/internal/system/utils"
)

const defaultTokenValidity = 3600 // default validity period of 1 hour
const defaultIssuer = "campus"

var (
	instance *JWTService
	once     sync.Once
)

// JWTServiceInterface defines the interface for JWT operations.
type JWTServiceInterface interface {
	Init() error
	GetPublicKey() *rsa.PublicKey
	GenerateJWT(sub, aud, iss string, validityPeriod int64, claims map[string]interface{}) (string, int64, error)
	VerifyJWT(jwtToken, expectedAud, expectedIss string) error
	VerifyJWTWithPublicKey(jwtToken string, publicKey *rsa.PublicKey, expectedAud, expectedIss string) error
	VerifyJWTSignature(jwtToken string) error
	VerifyJWTSignatureWithPublicKey(jwtToken string, publicKey *rsa.PublicKey) error
}

// JWTService implements the JWTServiceInterface for generating and managing JWT tokens.
type JWTService struct {
	privateKey *rsa.PrivateKey
}

// GetJWTService returns a singleton instance of JWTService.
func GetJWTService() JWTServiceInterface {
	once.Do(func() {
		instance = &JWTService{}
	})
	return instance
}

// Init loads the private key from the configured file path.
func (js *JWTService) Init() error {
	campusRuntime := config.GetCampusRuntime()
	keyFilePath := path.Join(campusRuntime.CampusHome, campusRuntime.Config.Security.KeyFile)
	keyFilePath = filepath.Clean(keyFilePath)

	// Check if the key file exists.
	if _, err := os.Stat(keyFilePath); os.IsNotExist(err) {
		return errors.New("key file not found at " + keyFilePath)
	}

	// Read the key file.
	keyData, err := os.ReadFile(keyFilePath)
	if err != nil {
		return err
	}

	// Decode the PEM block.
	block, _ := pem.Decode(keyData)
	if block == nil {
		return errors.New("failed to decode PEM block containing private key")
	}

	// Handle PKCS1 and PKCS8 private keys.
	if block.Type == "RSA PRIVATE KEY" {
		js.privateKey, err = x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return err
		}
	} else if block.Type == "PRIVATE KEY" {
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return err
		}
		var ok bool
		js.privateKey, ok = key.(*rsa.PrivateKey)
		if !ok {
			return errors.New("not an RSA private key")
		}
	} else {
		return errors.New("unsupported private key type: " + block.Type)
	}

	return nil
}

// GetPublicKey returns the RSA public key corresponding to the server's private key.
func (js *JWTService) GetPublicKey() *rsa.PublicKey {
	if js.privateKey == nil {
		return nil
	}
	return &js.privateKey.PublicKey
}

// GenerateJWT generates a standard JWT signed with the server's private key.
// An empty issuer selects the configured issuer.
func (js *JWTService) GenerateJWT(sub, aud, iss string, validityPeriod int64,
	claims map[string]interface{}) (string, int64, error) {
	if js.privateKey == nil {
		return "", 0, errors.New("private key not loaded")
	}

	// The certificate kid is resolved at startup from the server certificate.
	kid := config.GetCampusRuntime().CertConfig.CertKid
	if kid == "" {
		return "", 0, errors.New("certificate Key ID (kid) not found")
	}

	header := map[string]string{
		"alg": "RS256",
		"typ": "JWT",
		"kid": kid,
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", 0, err
	}

	// Calculate the expiration time based on the validity period.
	if validityPeriod == 0 {
		validityPeriod = defaultTokenValidity
	}
	if iss == "" {
		iss = GetJWTTokenIssuer()
	}
	iat := time.Now()
	expirationTime := iat.Add(time.Duration(validityPeriod) * time.Second).Unix()

	payload := map[string]interface{}{
		"sub": sub,
		"iss": iss,
		"aud": aud,
		"exp": expirationTime,
		"iat": iat.Unix(),
		"nbf": iat.Unix(),
		"jti": utils.GenerateUUID(),
	}

	// Add custom claims if provided.
	for key, value := range claims {
		payload[key] = value
	}

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", 0, err
	}

	// Encode the header and payload in base64 URL format.
	headerBase64 := base64.RawURLEncoding.EncodeToString(headerJSON)
	payloadBase64 := base64.RawURLEncoding.EncodeToString(payloadJSON)

	// Create the signing input and hash it.
	signingInput := headerBase64 + "." + payloadBase64
	hashed := sha256.Sum256([]byte(signingInput))

	// Sign the hashed input with the private key.
	signature, err := rsa.SignPKCS1v15(nil, js.privateKey, crypto.SHA256, hashed[:])
	if err != nil {
		return "", 0, err
	}

	signatureBase64 := base64.RawURLEncoding.EncodeToString(signature)

	return signingInput + "." + signatureBase64, iat.Unix(), nil
}

// VerifyJWT verifies a JWT token issued by this server, checking the signature
// and the standard claims.
func (js *JWTService) VerifyJWT(jwtToken, expectedAud, expectedIss string) error {
	publicKey := js.GetPublicKey()
	if publicKey == nil {
		return errors.New("public key not available")
	}
	return js.VerifyJWTWithPublicKey(jwtToken, publicKey, expectedAud, expectedIss)
}

// VerifyJWTWithPublicKey verifies the signature and the standard claims of a
// JWT token using the provided public key. Empty expected audience or issuer
// skips that claim check.
func (js *JWTService) VerifyJWTWithPublicKey(jwtToken string, publicKey *rsa.PublicKey,
	expectedAud, expectedIss string) error {
	parts := strings.Split(jwtToken, ".")
	if len(parts) != 3 {
		return errors.New("invalid JWT token format")
	}

	if err := js.VerifyJWTSignatureWithPublicKey(jwtToken, publicKey); err != nil {
		return fmt.Errorf("invalid token signature: %w", err)
	}

	claims, err := DecodeJWTPayload(jwtToken)
	if err != nil {
		return err
	}

	now := time.Now().Unix()

	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("missing or invalid 'exp' claim")
	}
	if int64(exp) < now {
		return errors.New("token has expired")
	}

	nbf, ok := claims["nbf"].(float64)
	if !ok {
		return errors.New("missing or invalid 'nbf' claim")
	}
	if int64(nbf) > now {
		return errors.New("token not valid yet (nbf)")
	}

	if expectedAud != "" {
		aud, ok := claims["aud"].(string)
		if !ok {
			return errors.New("missing or invalid 'aud' claim")
		}
		if aud != expectedAud {
			return errors.New("invalid audience")
		}
	}

	if expectedIss != "" {
		iss, ok := claims["iss"].(string)
		if !ok {
			return errors.New("missing or invalid 'iss' claim")
		}
		if iss != expectedIss {
			return errors.New("invalid issuer")
		}
	}

	return nil
}

// VerifyJWTSignature verifies the signature of a JWT token using the server's
// own public key.
func (js *JWTService) VerifyJWTSignature(jwtToken string) error {
	publicKey := js.GetPublicKey()
	if publicKey == nil {
		return errors.New("public key not available")
	}
	return js.VerifyJWTSignatureWithPublicKey(jwtToken, publicKey)
}

// VerifyJWTSignatureWithPublicKey verifies the signature of a JWT token using
// the provided public key.
func (js *JWTService) VerifyJWTSignatureWithPublicKey(jwtToken string, publicKey *rsa.PublicKey) error {
	parts := strings.Split(jwtToken, ".")
	if len(parts) != 3 {
		return errors.New("invalid JWT token format")
	}

	// Decode the signature
	signature, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return fmt.Errorf("failed to decode JWT signature: %w", err)
	}

	// Hash the signing input
	signingInput := parts[0] + "." + parts[1]
	hashed := sha256.Sum256([]byte(signingInput))

	return rsa.VerifyPKCS1v15(publicKey, crypto.SHA256, hashed[:], signature)
}
