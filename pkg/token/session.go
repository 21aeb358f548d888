package token

import (
	"climate_finance/internal/model"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// GenerateSessionToken Подписывает снимок сессии игры
func GenerateSessionToken(gameID string, snap model.Snapshot, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	chosen := snap.Chosen
	if chosen == nil {
		chosen = []string{}
	}

	claims := model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        gameID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Budget:           snap.Budget,
		Sustainability:   snap.Sustainability,
		CommunitySupport: snap.CommunitySupport,
		Round:            snap.Round,
		Chosen:           chosen,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

// VerifySessionToken Проверяет подпись и срок действия, возвращает id игры и снимок
func VerifySessionToken(tokenStr string, secretKey []byte) (string, model.Snapshot, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	})
	if err != nil {
		return "", model.Snapshot{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*model.SessionClaims)
	if !ok || claims.ID == "" {
		return "", model.Snapshot{}, fmt.Errorf("%w: bad claims", ErrInvalidToken)
	}

	return claims.ID, model.Snapshot{
		Budget:           claims.Budget,
		Sustainability:   claims.Sustainability,
		CommunitySupport: claims.CommunitySupport,
		Round:            claims.Round,
		Chosen:           claims.Chosen,
	}, nil
}
