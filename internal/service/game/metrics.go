package game

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_decisions_total",
			Help: "Total number of decision attempts by outcome.",
		},
		[]string{"outcome"},
	)

	gamesFinishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_finished_total",
			Help: "Total number of finished games by summary tier.",
		},
		[]string{"tier"},
	)

	resetsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "game_resets_total",
		Help: "Total number of started games.",
	})
)
