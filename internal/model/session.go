package model

// Phase Фаза игровой сессии
type Phase string

const (
	PhaseActive   Phase = "active"
	PhaseTerminal Phase = "terminal"
)

// Session Снимок состояния одной игры.
// Передаётся по значению, переходы возвращают новый снимок.
type Session struct {
	Budget           int
	Sustainability   int
	CommunitySupport int
	Round            int
	Chosen           ChosenSet
	Phase            Phase
	// Summary заполнен только в фазе PhaseTerminal
	Summary *Summary
}

func (s Session) IsTerminal() bool {
	return s.Phase == PhaseTerminal
}

// TotalScore Сумма обоих показателей
func (s Session) TotalScore() int {
	return s.Sustainability + s.CommunitySupport
}

// Game Сессия вместе с идентификатором игры, который живёт до сброса
type Game struct {
	ID      string
	Session Session
}

// Snapshot Данные сессии в том виде, в котором они приходят от клиента.
// До проверки им нельзя доверять.
type Snapshot struct {
	Budget           int
	Sustainability   int
	CommunitySupport int
	Round            int
	Chosen           []string
}
