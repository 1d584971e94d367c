package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/Rexant-b2k/RateReviewRevive/internal/domain"
)

// codeMACLen is the hex length of the code's MAC part.
const codeMACLen = 20

// CodeIssuer derives confirmation codes from a user's persisted state.
// A code is "<base36 unix ts>-<hmac-sha256 prefix>", where the MAC covers the
// user's id, email, role and updated_at together with the issue timestamp.
// Any persisted change to the user bumps updated_at and so invalidates every
// outstanding code; nothing is stored server-side.
type CodeIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodeIssuer creates a code issuer keyed with secret; codes expire after ttl.
func NewCodeIssuer(secret string, ttl time.Duration) *CodeIssuer {
	return &CodeIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue derives the confirmation code for the user's current state.
func (c *CodeIssuer) Issue(u *domain.User) string {
	ts := c.now().Unix()
	return strconv.FormatInt(ts, 36) + "-" + c.mac(u, ts)
}

// Verify reports whether code is a valid, unexpired code for the user's
// current state. Comparison is constant-time.
func (c *CodeIssuer) Verify(u *domain.User, code string) bool {
	tsPart, macPart, ok := strings.Cut(code, "-")
	if !ok || len(macPart) != codeMACLen {
		return false
	}

	ts, err := strconv.ParseInt(tsPart, 36, 64)
	if err != nil {
		return false
	}

	age := c.now().Sub(time.Unix(ts, 0))
	if age < 0 || age > c.ttl {
		return false
	}

	return hmac.Equal([]byte(macPart), []byte(c.mac(u, ts)))
}

// mac computes the state-bound MAC fragment for the given issue timestamp.
func (c *CodeIssuer) mac(u *domain.User, ts int64) string {
	h := hmac.New(sha256.New, c.secret)
	h.Write([]byte(u.ID.String()))
	h.Write([]byte{0})
	h.Write([]byte(u.Email))
	h.Write([]byte{0})
	h.Write([]byte(u.Role.String()))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatInt(u.UpdatedAt.UnixNano(), 10)))
	h.Write([]byte{0})
	h.Write([]byte(strconv.FormatInt(ts, 10)))
	return hex.EncodeToString(h.Sum(nil))[:codeMACLen]
}
