package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

// GenerateReferralCode generates a unique referral code
func GenerateReferralCode(length int) (string, error) {
	if length <= 0 {
		length = 8
	}

	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	// Encode to base64 and make URL-safe
	code := base64.URLEncoding.EncodeToString(bytes)
	code = strings.TrimRight(code, "=")
	if len(code) > length {
		code = code[:length]
	}

	// Make uppercase for better readability
	return strings.ToUpper(code), nil
}

// BuildReferralLink constructs a shareable referral link
func BuildReferralLink(baseURL, referralCode string) string {
	return fmt.Sprintf("%s/refer?code=%s", baseURL, referralCode)
}
