package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	signaturePrefix      = "sha256="
	maxSources           = 1000
	sourceIdleTTL        = 5 * time.Minute
	maxDeliveries        = 10000
	defaultRedeliveryTTL = 24 * time.Hour
	defaultRatePerMin    = 60
)

var (
	errNoSecret         = errors.New("webhook secret not configured")
	errSignatureFormat  = errors.New("invalid signature format")
	errSignatureInvalid = errors.New("signature verification failed")
	errIPNotAllowed     = errors.New("ip not allowed")
	errRateLimited      = errors.New("rate limit exceeded")
)

// SecurityValidator guards the entry webhook: HMAC signature, source
// allowlist, per-source rate limit and the redelivery guard.
type SecurityValidator struct {
	secret     []byte
	allowExact map[string]struct{}
	allowNets  []*net.IPNet
	limiter    *rateLimiter
	deliveries *expirable.LRU[string, struct{}]
}

// NewSecurityValidator parses the allowlist once. Entries that are neither an
// IP nor a CIDR are ignored.
func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	ttl := config.RedeliveryTTL
	if ttl <= 0 {
		ttl = defaultRedeliveryTTL
	}

	v := &SecurityValidator{
		secret:     []byte(config.Secret),
		allowExact: make(map[string]struct{}, len(config.AllowedIPs)),
		limiter:    newRateLimiter(config.RateLimitPerMin),
		deliveries: expirable.NewLRU[string, struct{}](maxDeliveries, nil, ttl),
	}
	for _, entry := range config.AllowedIPs {
		entry = strings.TrimSpace(entry)
		if _, ipNet, err := net.ParseCIDR(entry); err == nil {
			v.allowNets = append(v.allowNets, ipNet)
			continue
		}
		if ip := net.ParseIP(entry); ip != nil {
			v.allowExact[ip.String()] = struct{}{}
		}
	}
	return v
}

// ValidateSignature verifies the "sha256=<hex>" HMAC of the body.
func (v *SecurityValidator) ValidateSignature(payload []byte, signature string) error {
	if len(v.secret) == 0 {
		return errNoSecret
	}

	hexSig, ok := strings.CutPrefix(signature, signaturePrefix)
	if !ok {
		return errSignatureFormat
	}
	got, err := hex.DecodeString(hexSig)
	if err != nil {
		return fmt.Errorf("%w: %v", errSignatureFormat, err)
	}

	if !hmac.Equal(got, Sign(string(v.secret), payload)) {
		return errSignatureInvalid
	}
	return nil
}

// Sign computes the HMAC-SHA256 of payload under secret.
func Sign(secret string, payload []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return mac.Sum(nil)
}

// ValidateIPAddress accepts everyone when no allowlist is configured.
func (v *SecurityValidator) ValidateIPAddress(r *http.Request) error {
	if len(v.allowExact) == 0 && len(v.allowNets) == 0 {
		return nil
	}

	source := extractIP(r)
	ip := net.ParseIP(source)
	if ip == nil {
		return fmt.Errorf("%w: %q", errIPNotAllowed, source)
	}
	if _, ok := v.allowExact[ip.String()]; ok {
		return nil
	}
	for _, n := range v.allowNets {
		if n.Contains(ip) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", errIPNotAllowed, source)
}

// CheckRateLimit spends one token from source's bucket.
func (v *SecurityValidator) CheckRateLimit(source string) error {
	if !v.limiter.allow(source) {
		return fmt.Errorf("%w for %s", errRateLimited, source)
	}
	return nil
}

// Delivered reports whether a delivery id was already processed.
func (v *SecurityValidator) Delivered(id string) bool {
	if id == "" {
		return false
	}
	return v.deliveries.Contains(id)
}

// MarkDelivered remembers a processed delivery id until its TTL expires.
func (v *SecurityValidator) MarkDelivered(id string) {
	if id != "" {
		v.deliveries.Add(id, struct{}{})
	}
}

// extractIP prefers proxy headers over the peer address.
func extractIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// rateLimiter keeps one token bucket per source, evicted when idle.
type rateLimiter struct {
	buckets *expirable.LRU[string, *rate.Limiter]
	rate    rate.Limit
	burst   int
}

func newRateLimiter(perMin int) *rateLimiter {
	if perMin <= 0 {
		perMin = defaultRatePerMin
	}
	return &rateLimiter{
		buckets: expirable.NewLRU[string, *rate.Limiter](maxSources, nil, sourceIdleTTL),
		rate:    rate.Limit(float64(perMin) / 60),
		burst:   max(perMin/10, 1),
	}
}

func (rl *rateLimiter) allow(source string) bool {
	bucket, ok := rl.buckets.Get(source)
	if !ok {
		bucket = rate.NewLimiter(rl.rate, rl.burst)
		rl.buckets.Add(source, bucket)
	}
	return bucket.Allow()
}
