package obs

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_registrations_total",
		Help: "Number of organizer accounts created.",
	})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_logins_total",
		Help: "Login attempts by outcome.",
	}, []string{"status"})

	RefreshesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_refreshes_total",
		Help: "Refresh token exchanges by outcome.",
	}, []string{"status"})

	LogoutsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_logouts_total",
		Help: "Number of logouts that revoked at least one session.",
	})
)

// MetricsHandler exposes the default Prometheus registry on a fiber route.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
