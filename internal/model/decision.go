package model

// RejectReason Причина отказа в применении решения
type RejectReason string

const (
	RejectNone               RejectReason = ""
	RejectInsufficientBudget RejectReason = "insufficient_budget"
	RejectUnknownOption      RejectReason = "unknown_option"
	RejectAlreadyChosen      RejectReason = "already_chosen"
	RejectGameOver           RejectReason = "game_over"
)

// DecisionResult Результат попытки применить решение.
// При отказе Session совпадает с исходной.
type DecisionResult struct {
	Session  Session
	Accepted bool
	Reason   RejectReason
	// Option нулевой, если id не найден в каталоге
	Option InvestmentOption
	// Finished true, если именно это решение перевело сессию в PhaseTerminal
	Finished bool
}

// SummaryTier Уровень итогового результата
type SummaryTier string

const (
	TierExcellent SummaryTier = "excellent"
	TierGood      SummaryTier = "good"
	TierModerate  SummaryTier = "moderate"
	TierLow       SummaryTier = "low"
)

// Summary Итог завершённой игры
type Summary struct {
	TotalScore int
	Tier       SummaryTier
	Message    string
}
