package relay

import (
	"strings"

	"github.com/samber/lo"
)

// AllowListPolicy decides which upstream URLs the relay may fetch. A URL is
// allowed when it contains at least one token as a plain, case-sensitive
// substring.
type AllowListPolicy struct {
	tokens []string
}

// NewAllowListPolicy builds a policy from the given tokens. Blank tokens are
// dropped since they would match every URL.
func NewAllowListPolicy(tokens []string) *AllowListPolicy {
	cleaned := lo.Uniq(lo.Filter(tokens, func(token string, _ int) bool {
		return strings.TrimSpace(token) != ""
	}))
	return &AllowListPolicy{tokens: cleaned}
}

// Allows reports whether the decoded URL matches any token
func (p *AllowListPolicy) Allows(decodedURL string) bool {
	return lo.SomeBy(p.tokens, func(token string) bool {
		return strings.Contains(decodedURL, token)
	})
}

// Tokens returns a copy of the configured tokens
func (p *AllowListPolicy) Tokens() []string {
	return append([]string(nil), p.tokens...)
}
