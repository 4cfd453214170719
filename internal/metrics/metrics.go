package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal *prometheus.CounterVec
	statusToggles     *prometheus.CounterVec
	registerOnce      sync.Once
)

// Register initializes Prometheus metrics on the default registry.
func Register() {
	registerOnce.Do(func() {
		httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "useradmin",
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed by the user admin API.",
		}, []string{"method", "path", "status"})

		statusToggles = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "useradmin",
			Name:      "user_status_toggles_total",
			Help:      "Total user status toggles, labeled by the resulting status.",
		}, []string{"new_status"})
	})
}

// IncRequest increments the http_requests_total counter with the given labels.
func IncRequest(method, path string, status int) {
	if httpRequestsTotal == nil {
		return
	}
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
}

// IncStatusToggle increments the toggle counter for the status a user ended
// up in.
func IncStatusToggle(newStatus string) {
	if statusToggles == nil {
		return
	}
	statusToggles.WithLabelValues(newStatus).Inc()
}
