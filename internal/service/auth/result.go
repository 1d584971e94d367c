package auth

import "github.com/Rexant-b2k/RateReviewRevive/internal/domain"

// SignupResult echoes the account the confirmation code was mailed to.
type SignupResult struct {
	User *domain.User
}

// TokenResult carries the issued access token.
type TokenResult struct {
	AccessToken string
}
