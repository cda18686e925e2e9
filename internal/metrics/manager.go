package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds the progression metrics.
type Manager struct {
	// counters
	CounterWorkoutsCompleted *prometheus.CounterVec
	CounterSessionsStarted   prometheus.Counter
	CounterSessionsAborted   prometheus.Counter
	CounterPowerGained       prometheus.Counter
	CounterStreakBonus       prometheus.Counter
	CounterRequests          *prometheus.CounterVec
	CounterHandlerPanic      prometheus.Counter

	// gauges
	GaugePowerLevel prometheus.Gauge
	GaugeStreakDays prometheus.Gauge

	// histograms
	HistRequestDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("saiyan", "test", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("saiyan", "test", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	return &Manager{
		CounterWorkoutsCompleted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "workouts_completed",
			Help:      "The total number of completed workout sessions",
		}, []string{"difficulty"}),
		CounterSessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sessions_started",
			Help:      "The total number of started workout sessions",
		}),
		CounterSessionsAborted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sessions_aborted",
			Help:      "The total number of sessions abandoned before completion",
		}),
		CounterPowerGained: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "power_gained",
			Help:      "Power level gained from workouts, streak bonus included",
		}),
		CounterStreakBonus: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "streak_bonus",
			Help:      "Power level gained from streak bonuses",
		}),
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "requests",
			Help:      "The total number of handled HTTP requests",
		}, []string{"method", "status"}),
		CounterHandlerPanic: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "handler_panic",
			Help:      "The total number of recovered handler panics",
		}),
		GaugePowerLevel: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "power_level",
			Help:      "Current power level of the trainee",
		}),
		GaugeStreakDays: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "streak_days",
			Help:      "Current day streak of the trainee",
		}),
		HistRequestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}
