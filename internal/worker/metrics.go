package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	cyclesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "salewatch_cycles_total",
		Help: "Poll-and-decide cycles by outcome.",
	}, []string{"outcome"})

	dealsFound = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "salewatch_deals_found",
		Help: "Discounted variants seen in the last completed cycle.",
	})

	notificationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "salewatch_notifications_total",
		Help: "Chat messages sent on sale transitions.",
	})
)

const (
	outcomeOK     = "ok"
	outcomeNoData = "no_data"
	outcomeError  = "error"
)
