package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims Содержимое токена игровой сессии. ID (jti) хранит идентификатор игры.
type SessionClaims struct {
	jwt.RegisteredClaims
	Budget           int      `json:"budget"`
	Sustainability   int      `json:"sustainability"`
	CommunitySupport int      `json:"community_support"`
	Round            int      `json:"round"`
	Chosen           []string `json:"chosen"`
}
