package cloudshare

import (
	"crypto/rand"
	"crypto/sha1" // #nosec G505 -- mandated by the CloudShare cs_sha1 scheme
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// AuthScheme is the scheme tag of the Authorization header.
	AuthScheme = "cs_sha1"

	// NonceLength is the number of characters in the per-request token.
	NonceLength = 10

	nonceAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// nonceByteLimit is the largest multiple of len(nonceAlphabet) that fits in a byte.
	nonceByteLimit = 256 - 256%len(nonceAlphabet)
)

// Credentials identify the API caller. They are held in memory only.
type Credentials struct {
	APIID  string
	APIKey string
}

// Signer derives the per-request Authorization header.
type Signer struct {
	creds Credentials
	now   func() time.Time
	rand  io.Reader
}

// NewSigner creates a signer using the wall clock and crypto/rand.
func NewSigner(creds Credentials) *Signer {
	return &Signer{
		creds: creds,
		now:   time.Now,
		rand:  rand.Reader,
	}
}

// Sign returns the Authorization header value for a request.
// params are only folded into the signed URL for GET requests.
func (s *Signer) Sign(method, rawURL string, params map[string]string) (string, error) {
	timestamp := strconv.FormatInt(s.now().Unix(), 10)

	nonce, err := s.nonce()
	if err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	canonical := CanonicalURL(method, rawURL, params)
	digest := Digest(s.creds.APIKey, canonical, timestamp, nonce)

	return fmt.Sprintf("%s userapiid:%s;timestamp:%s;token:%s;hmac:%s",
		AuthScheme, s.creds.APIID, timestamp, nonce, digest), nil
}

// CanonicalURL returns the URL string that is covered by the signature.
func CanonicalURL(method, rawURL string, params map[string]string) string {
	if method != http.MethodGet || len(params) == 0 {
		return rawURL
	}
	return rawURL + "?" + CanonicalQuery(params)
}

// CanonicalQuery joins params as k=v pairs sorted by key.
// Values are not escaped; the server signs the raw form.
func CanonicalQuery(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	return strings.Join(pairs, "&")
}

// Digest is the lowercase hex SHA-1 of key || url || timestamp || nonce.
func Digest(apiKey, canonicalURL, timestamp, nonce string) string {
	sum := sha1.Sum([]byte(apiKey + canonicalURL + timestamp + nonce)) // #nosec G401
	return hex.EncodeToString(sum[:])
}

// nonce draws NonceLength characters uniformly from nonceAlphabet. Bytes at
// or above nonceByteLimit are rejected so every character is equally likely.
func (s *Signer) nonce() (string, error) {
	out := make([]byte, 0, NonceLength)
	buf := make([]byte, NonceLength)
	for len(out) < NonceLength {
		chunk := buf[:NonceLength-len(out)]
		if _, err := io.ReadFull(s.rand, chunk); err != nil {
			return "", err
		}
		for _, b := range chunk {
			if int(b) < nonceByteLimit {
				out = append(out, nonceAlphabet[int(b)%len(nonceAlphabet)])
			}
		}
	}
	return string(out), nil
}
