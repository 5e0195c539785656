// Package webhook verifies svix-style webhook signatures from the
// identity provider. The signed content is "<id>.<timestamp>.<body>" and
// the signature header may carry several space-separated "v1,<base64>"
// candidates, any one of which must match.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	HeaderID        = "svix-id"
	HeaderTimestamp = "svix-timestamp"
	HeaderSignature = "svix-signature"

	secretPrefix     = "whsec_"
	defaultTolerance = 5 * time.Minute
)

var ErrMissingHeaders = errors.New("webhook: missing signature headers")
var ErrBadSignature = errors.New("webhook: signature verification failed")
var ErrStaleTimestamp = errors.New("webhook: timestamp outside tolerance")

// Verifier checks webhook payload signatures against the shared secret.
type Verifier struct {
	key       []byte
	tolerance time.Duration
	now       func() time.Time
}

// NewVerifier builds a Verifier from the provider's endpoint secret
// ("whsec_" prefix plus base64 key material).
func NewVerifier(secret string) (*Verifier, error) {
	raw := strings.TrimPrefix(secret, secretPrefix)
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("webhook: decode secret: %w", err)
	}
	if len(key) == 0 {
		return nil, errors.New("webhook: empty secret")
	}
	return &Verifier{key: key, tolerance: defaultTolerance, now: time.Now}, nil
}

// Verify checks the three signature headers against the raw body and
// returns the delivery id on success.
func (v *Verifier) Verify(headers http.Header, body []byte) (string, error) {
	id := headers.Get(HeaderID)
	ts := headers.Get(HeaderTimestamp)
	sig := headers.Get(HeaderSignature)
	if id == "" || ts == "" || sig == "" {
		return "", ErrMissingHeaders
	}

	unix, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return "", ErrBadSignature
	}
	if delta := v.now().UTC().Sub(time.Unix(unix, 0)); delta > v.tolerance || delta < -v.tolerance {
		return "", ErrStaleTimestamp
	}

	mac := hmac.New(sha256.New, v.key)
	fmt.Fprintf(mac, "%s.%s.", id, ts)
	mac.Write(body)
	expected := mac.Sum(nil)

	// The header may list multiple versioned signatures; accept if any
	// v1 candidate matches.
	for _, candidate := range strings.Fields(sig) {
		parts := strings.SplitN(candidate, ",", 2)
		if len(parts) != 2 || parts[0] != "v1" {
			continue
		}
		got, err := base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			continue
		}
		if hmac.Equal(expected, got) {
			return id, nil
		}
	}
	return "", ErrBadSignature
}
