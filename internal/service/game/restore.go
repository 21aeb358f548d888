package game

import (
	"climate_finance/internal/model"
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// ErrInvalidSnapshot Снимок не воспроизводится из начального состояния
var ErrInvalidSnapshot = errors.New("invalid session snapshot")

// Restore Восстанавливает сессию из присланного клиентом снимка.
// Выбранные варианты заново проигрываются от начального состояния,
// итог должен совпасть с числами в снимке.
func (s *serv) Restore(ctx context.Context, snap model.Snapshot) (model.Session, error) {
	session := NewSession()
	for _, id := range snap.Chosen {
		res := s.decide(session, id)
		if !res.Accepted {
			return model.Session{}, fmt.Errorf("%w: option %q rejected on replay: %s", ErrInvalidSnapshot, id, res.Reason)
		}
		session = res.Session
	}

	if session.Budget != snap.Budget ||
		session.Sustainability != snap.Sustainability ||
		session.CommunitySupport != snap.CommunitySupport ||
		session.Round != snap.Round {
		return model.Session{}, fmt.Errorf("%w: state does not match chosen options", ErrInvalidSnapshot)
	}

	zerolog.Ctx(ctx).Debug().
		Int("round", session.Round).
		Str("phase", string(session.Phase)).
		Msg("session restored")

	return session, nil
}

// ToSnapshot Данные сессии для передачи клиенту
func ToSnapshot(session model.Session) model.Snapshot {
	return model.Snapshot{
		Budget:           session.Budget,
		Sustainability:   session.Sustainability,
		CommunitySupport: session.CommunitySupport,
		Round:            session.Round,
		Chosen:           session.Chosen.IDs(),
	}
}
