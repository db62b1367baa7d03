// SPDX-License-Identifier: MIT

package strategy

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// searchAttempts counts oracle calls made by BeatDegree.
	searchAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pandemaniac_search_attempts_total",
		Help: "Total candidate seed sets evaluated by the adversarial search",
	})

	// searchOutcomes counts finished searches by outcome.
	searchOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pandemaniac_search_outcomes_total",
		Help: "Total adversarial searches by outcome",
	}, []string{"outcome"})
)
