// Package metrics exposes board activity as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the metrics surface used by services and middleware.
type Recorder interface {
	RecordSignup()
	RecordLogin(outcome string)
	RecordMessagePosted()
	RecordAuthRejection(reason string)
	SetBoardMessages(n int)
}

// Login outcomes.
const (
	LoginSuccess       = "success"
	LoginUnknownUser   = "unknown_user"
	LoginWrongPassword = "wrong_password"
	LoginError         = "error"
)

// Collector is the Prometheus Recorder implementation.
type Collector struct {
	signups        prometheus.Counter
	logins         *prometheus.CounterVec
	messagesPosted prometheus.Counter
	authRejections *prometheus.CounterVec
	boardMessages  prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		signups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "board_signups_total",
			Help: "Accounts created.",
		}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "board_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		messagesPosted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "board_messages_posted_total",
			Help: "Messages posted.",
		}),
		authRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "board_auth_rejections_total",
			Help: "Requests rejected by the bearer token gate, by reason.",
		}, []string{"reason"}),
		boardMessages: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "board_messages",
			Help: "Messages currently stored, as of the last stats run.",
		}),
	}

	reg.MustRegister(
		c.signups,
		c.logins,
		c.messagesPosted,
		c.authRejections,
		c.boardMessages,
	)

	return c
}

// RecordSignup counts a created account.
func (c *Collector) RecordSignup() {
	c.signups.Inc()
}

// RecordLogin counts a login attempt with the given outcome.
func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

// RecordMessagePosted counts a stored message.
func (c *Collector) RecordMessagePosted() {
	c.messagesPosted.Inc()
}

// RecordAuthRejection counts a request turned away by the token gate.
func (c *Collector) RecordAuthRejection(reason string) {
	c.authRejections.WithLabelValues(reason).Inc()
}

// SetBoardMessages sets the stored message gauge.
func (c *Collector) SetBoardMessages(n int) {
	c.boardMessages.Set(float64(n))
}

// Handler returns the /metrics endpoint for the given gatherer.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// Nop is a Recorder that discards everything.
type Nop struct{}

func (Nop) RecordSignup()              {}
func (Nop) RecordLogin(string)         {}
func (Nop) RecordMessagePosted()       {}
func (Nop) RecordAuthRejection(string) {}
func (Nop) SetBoardMessages(int)       {}
