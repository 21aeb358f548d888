package model

// InvestmentOption Вариант инвестиции из каталога. Неизменяемый.
type InvestmentOption struct {
	ID                   string
	Title                string
	Description          string
	Category             string
	Cost                 int
	SustainabilityEffect int
	CommunityEffect      int
}

// Milestone Этап трека знаний, привязанный к номеру раунда
type Milestone struct {
	Round       int
	Title       string
	Description string
}
