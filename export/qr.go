package export

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"
)

var shareSecret = []byte(shareSecretFromEnv())

func shareSecretFromEnv() string {
	if s := os.Getenv("SHARE_SECRET"); s != "" {
		return s
	}
	return "your-very-secret-key"
}

// SharePayload returns a signed payload string: itineraryID|timestamp|signature
func SharePayload(itineraryID string) string {
	timestamp := time.Now().Unix()
	data := fmt.Sprintf("%s|%d", itineraryID, timestamp)

	h := hmac.New(sha256.New, shareSecret)
	h.Write([]byte(data))
	// URL-safe: the payload travels as a path segment.
	sig := base64.RawURLEncoding.EncodeToString(h.Sum(nil))

	return fmt.Sprintf("%s|%s", data, sig)
}

// VerifySharePayload checks the signature and returns the itinerary id.
func VerifySharePayload(payload string) (string, bool) {
	idx := strings.LastIndex(payload, "|")
	if idx < 0 {
		return "", false
	}
	data, sig := payload[:idx], payload[idx+1:]

	h := hmac.New(sha256.New, shareSecret)
	h.Write([]byte(data))
	want := base64.RawURLEncoding.EncodeToString(h.Sum(nil))
	if !hmac.Equal([]byte(sig), []byte(want)) {
		return "", false
	}

	parts := strings.SplitN(data, "|", 2)
	return parts[0], true
}

// ShareQR encodes the signed payload as a PNG QR image.
func ShareQR(itineraryID string, size int) ([]byte, error) {
	return qrcode.Encode(SharePayload(itineraryID), qrcode.Medium, size)
}
