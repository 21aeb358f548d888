package model

const (
	// InitialBudget Стартовый бюджет сессии
	InitialBudget = 50000
	// MaxRounds Количество раундов в игре
	MaxRounds = 5
	// MinBudget Если бюджет опустился ниже этого значения, игра заканчивается
	MinBudget = 5000
	// MaxScore Верхняя граница для обоих показателей (в процентах)
	MaxScore = 100
)
