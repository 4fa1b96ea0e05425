package authn

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var metricLoginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "foyer",
	Subsystem: "authn",
	Name:      "login_attempts_total",
	Help:      "Login attempts by method and outcome.",
}, []string{"method", "outcome"})
