// ABOUTME: This file defines OAuth2 token models for the Fitbit API
// ABOUTME: Handles the refresh-token exchange response and stored credentials

package models

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Secret names used by the token refresh cycle.
const (
	SecretAccessToken       = "AccessToken"
	SecretRefreshToken      = "RefreshToken"
	SecretFitbitCredentials = "FitbitCredentials"
)

// RefreshTokenResponse represents the Fitbit OAuth2 token endpoint response
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	TokenType    string `json:"token_type"`
	Scope        string `json:"scope"`
	UserID       string `json:"user_id"`
}

// Valid reports whether the response carries both tokens needed for the
// next refresh cycle.
func (r *RefreshTokenResponse) Valid() bool {
	return r != nil && r.AccessToken != "" && r.RefreshToken != ""
}

// FitbitCredentials are the OAuth2 application credentials for the Fitbit API
type FitbitCredentials struct {
	ClientID     string
	ClientSecret string
}

// DecodeFitbitCredentials parses the stored credential secret, which is the
// base64 encoding of "clientId:clientSecret".
func DecodeFitbitCredentials(encoded string) (FitbitCredentials, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return FitbitCredentials{}, fmt.Errorf("credentials are not valid base64: %w", err)
	}

	clientID, clientSecret, ok := strings.Cut(string(raw), ":")
	if !ok || clientID == "" || clientSecret == "" {
		return FitbitCredentials{}, fmt.Errorf("credentials must decode to clientId:clientSecret")
	}

	return FitbitCredentials{ClientID: clientID, ClientSecret: clientSecret}, nil
}
