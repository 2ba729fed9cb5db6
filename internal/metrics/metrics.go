package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "gameday"

// Recorder holds the process metrics. A nil Recorder discards everything.
type Recorder struct {
	plays               *prometheus.CounterVec
	yards               *prometheus.CounterVec
	touchdowns          prometheus.Counter
	goalBonuses         *prometheus.CounterVec
	rollovers           *prometheus.CounterVec
	persistenceFailures *prometheus.CounterVec
	supporterPosts      *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

// New creates the recorder and registers it with reg
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		plays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plays_total",
			Help:      "Plays run, by category and pace",
		}, []string{"category", "pace"}),
		yards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "yards_total",
			Help:      "Yards gained, by category",
		}, []string{"category"}),
		touchdowns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "touchdowns_total",
			Help:      "Touchdowns scored from plays",
		}),
		goalBonuses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "goal_bonuses_total",
			Help:      "Daily goal bonuses awarded, by category",
		}, []string{"category"}),
		rollovers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rollovers_total",
			Help:      "Day rollovers, by whether the stale day was archived",
		}, []string{"archived"}),
		persistenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_failures_total",
			Help:      "Failed writes to a store",
		}, []string{"operation"}),
		supporterPosts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "supporter_posts_total",
			Help:      "Supporter board posts, by result",
		}, []string{"result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"path", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
	}

	collectors := []prometheus.Collector{
		r.plays, r.yards, r.touchdowns, r.goalBonuses, r.rollovers,
		r.persistenceFailures, r.supporterPosts, r.httpRequests, r.httpDuration,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Play records one committed play
func (r *Recorder) Play(category, pace string, yards float64, touchdown bool) {
	if r == nil {
		return
	}
	r.plays.WithLabelValues(category, pace).Inc()
	if yards > 0 {
		r.yards.WithLabelValues(category).Add(yards)
	}
	if touchdown {
		r.touchdowns.Inc()
	}
}

// GoalBonus records an awarded goal bonus
func (r *Recorder) GoalBonus(category string) {
	if r == nil {
		return
	}
	r.goalBonuses.WithLabelValues(category).Inc()
}

// Rollover records a day rollover
func (r *Recorder) Rollover(archived bool) {
	if r == nil {
		return
	}
	label := "false"
	if archived {
		label = "true"
	}
	r.rollovers.WithLabelValues(label).Inc()
}

// PersistenceFailure records a failed store write
func (r *Recorder) PersistenceFailure(operation string) {
	if r == nil {
		return
	}
	r.persistenceFailures.WithLabelValues(operation).Inc()
}

// SupporterPost records a board post attempt
func (r *Recorder) SupporterPost(result string) {
	if r == nil {
		return
	}
	r.supporterPosts.WithLabelValues(result).Inc()
}

// HTTPRequest records one served request
func (r *Recorder) HTTPRequest(path, method string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.httpRequests.WithLabelValues(path, method, statusLabel(status)).Inc()
	r.httpDuration.WithLabelValues(path, method).Observe(elapsed.Seconds())
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
