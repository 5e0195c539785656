package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"testing"
	"time"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func testSecret() string {
	return "whsec_" + base64.StdEncoding.EncodeToString(testKey)
}

func signedHeaders(t *testing.T, id string, ts time.Time, body []byte) http.Header {
	t.Helper()
	tsStr := strconv.FormatInt(ts.Unix(), 10)
	mac := hmac.New(sha256.New, testKey)
	fmt.Fprintf(mac, "%s.%s.", id, tsStr)
	mac.Write(body)

	h := http.Header{}
	h.Set(HeaderID, id)
	h.Set(HeaderTimestamp, tsStr)
	h.Set(HeaderSignature, "v1,"+base64.StdEncoding.EncodeToString(mac.Sum(nil)))
	return h
}

func newTestVerifier(t *testing.T, now time.Time) *Verifier {
	t.Helper()
	v, err := NewVerifier(testSecret())
	if err != nil {
		t.Fatalf("build verifier: %v", err)
	}
	v.now = func() time.Time { return now }
	return v
}

func TestVerifier_ValidSignature(t *testing.T) {
	now := time.Now()
	body := []byte(`{"type":"user.created"}`)
	v := newTestVerifier(t, now)

	id, err := v.Verify(signedHeaders(t, "msg_1", now, body), body)
	if err != nil {
		t.Fatalf("expected valid signature, got: %v", err)
	}
	if id != "msg_1" {
		t.Errorf("expected delivery id returned, got %q", id)
	}
}

func TestVerifier_TamperedBody(t *testing.T) {
	now := time.Now()
	body := []byte(`{"type":"user.created"}`)
	v := newTestVerifier(t, now)

	headers := signedHeaders(t, "msg_1", now, body)
	_, err := v.Verify(headers, []byte(`{"type":"user.deleted"}`))
	if !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got: %v", err)
	}
}

func TestVerifier_MissingHeaders(t *testing.T) {
	v := newTestVerifier(t, time.Now())

	h := http.Header{}
	h.Set(HeaderID, "msg_1")
	if _, err := v.Verify(h, []byte("{}")); !errors.Is(err, ErrMissingHeaders) {
		t.Fatalf("expected ErrMissingHeaders, got: %v", err)
	}
}

func TestVerifier_StaleTimestamp(t *testing.T) {
	now := time.Now()
	body := []byte("{}")
	v := newTestVerifier(t, now)

	headers := signedHeaders(t, "msg_1", now.Add(-10*time.Minute), body)
	if _, err := v.Verify(headers, body); !errors.Is(err, ErrStaleTimestamp) {
		t.Fatalf("expected ErrStaleTimestamp, got: %v", err)
	}
}

func TestVerifier_FutureTimestamp(t *testing.T) {
	now := time.Now()
	body := []byte("{}")
	v := newTestVerifier(t, now)

	headers := signedHeaders(t, "msg_1", now.Add(10*time.Minute), body)
	if _, err := v.Verify(headers, body); !errors.Is(err, ErrStaleTimestamp) {
		t.Fatalf("expected ErrStaleTimestamp, got: %v", err)
	}
}

func TestVerifier_MultipleCandidates(t *testing.T) {
	now := time.Now()
	body := []byte("{}")
	v := newTestVerifier(t, now)

	// An old-key signature before the valid one must not break matching.
	headers := signedHeaders(t, "msg_1", now, body)
	valid := headers.Get(HeaderSignature)
	bogus := "v1," + base64.StdEncoding.EncodeToString([]byte("not a real signature............"))
	headers.Set(HeaderSignature, bogus+" "+valid)

	if _, err := v.Verify(headers, body); err != nil {
		t.Fatalf("expected any matching candidate to verify, got: %v", err)
	}
}

func TestVerifier_UnknownVersionIgnored(t *testing.T) {
	now := time.Now()
	body := []byte("{}")
	v := newTestVerifier(t, now)

	headers := signedHeaders(t, "msg_1", now, body)
	headers.Set(HeaderSignature, "v2a,"+base64.StdEncoding.EncodeToString([]byte("whatever")))

	if _, err := v.Verify(headers, body); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got: %v", err)
	}
}

func TestNewVerifier_RejectsBadSecret(t *testing.T) {
	if _, err := NewVerifier("whsec_%%%not-base64%%%"); err == nil {
		t.Fatal("expected error for undecodable secret")
	}
	if _, err := NewVerifier("whsec_"); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
