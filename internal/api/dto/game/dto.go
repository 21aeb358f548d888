package game

type DecisionRequest struct {
	OptionID string `json:"option_id"` // id варианта из каталога
}

type OptionResponse struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	Category             string `json:"category"`
	Cost                 int    `json:"cost"`
	CostLabel            string `json:"cost_label"` // R$ 15.000
	SustainabilityEffect int    `json:"sustainability_effect"`
	CommunityEffect      int    `json:"community_effect"`
	Affordable           *bool  `json:"affordable,omitempty"` // Только в контексте сессии
}

type MilestoneResponse struct {
	Round       int    `json:"round"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"` // completed, current, pending
}

type SummaryResponse struct {
	TotalScore int    `json:"total_score"`
	Tier       string `json:"tier"`
	Message    string `json:"message"`
}

type SessionResponse struct {
	GameID           string              `json:"game_id"`
	Status           string              `json:"status"` // active, terminal
	Budget           int                 `json:"budget"`
	BudgetLabel      string              `json:"budget_label"`
	Sustainability   int                 `json:"sustainability"`
	CommunitySupport int                 `json:"community_support"`
	Round            int                 `json:"round"`
	MaxRounds        int                 `json:"max_rounds"`
	Chosen           []string            `json:"chosen"`
	Available        []OptionResponse    `json:"available"`
	Trail            []MilestoneResponse `json:"trail"`
	Summary          *SummaryResponse    `json:"summary,omitempty"`
}

type NoticeResponse struct {
	Kind        string `json:"kind"` // success, error, info
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type GameResponse struct {
	Session SessionResponse  `json:"session"`
	Notices []NoticeResponse `json:"notices,omitempty"`
}

type DecisionResponse struct {
	Accepted bool             `json:"accepted"`
	Reason   string           `json:"reason,omitempty"`
	Session  SessionResponse  `json:"session"`
	Notices  []NoticeResponse `json:"notices"`
}

type CatalogResponse struct {
	Options []OptionResponse `json:"options"`
}
