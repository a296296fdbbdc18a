package rules

import "github.com/prometheus/client_golang/prometheus"

var (
	ticksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "rules",
			Name:      "ticks_total",
			Help:      "Simulation ticks run.",
		},
	)
	deathsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "rules",
			Name:      "deaths_total",
			Help:      "Snake deaths by cause.",
		},
		[]string{"cause"},
	)
	foodEatenTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "rules",
			Name:      "food_eaten_total",
			Help:      "Food cells eaten.",
		},
	)
	foodPlacementFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "arena",
			Subsystem: "rules",
			Name:      "food_placement_failures_total",
			Help:      "Food placements that ran out of attempts.",
		},
	)
)

func init() {
	prometheus.MustRegister(ticksTotal, deathsTotal, foodEatenTotal, foodPlacementFailures)
}
