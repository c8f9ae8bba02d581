package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CalcTotal считает выполненные расчёты по операции и исходу.
// op: requirement|cost; outcome: ok|validation|not_found|store_error
var CalcTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "decor_calc_total",
	Help: "Количество расчётов по операции и результату.",
}, []string{"op", "outcome"})
