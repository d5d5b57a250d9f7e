package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics are domain counters. A nil *Metrics records nothing so services
// built in tests need no registry.
type Metrics struct {
	signups             *prometheus.CounterVec
	invitationsIssued   prometheus.Counter
	invitationsAccepted prometheus.Counter
	invitationsExpired  prometheus.Counter
	roleChanges         *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		signups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pantry",
			Name:      "signups_total",
			Help:      "Completed signups by how the family was chosen.",
		}, []string{"family"}),
		invitationsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pantry",
			Name:      "invitations_issued_total",
			Help:      "Invitations issued by family admins.",
		}),
		invitationsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pantry",
			Name:      "invitations_accepted_total",
			Help:      "Invitations consumed at signup.",
		}),
		invitationsExpired: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "pantry",
			Name:      "invitations_expired_deleted_total",
			Help:      "Expired pending invitations removed by housekeeping.",
		}),
		roleChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pantry",
			Name:      "role_changes_total",
			Help:      "Role change attempts by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.signups, m.invitationsIssued, m.invitationsAccepted, m.invitationsExpired, m.roleChanges)
	return m
}

func (m *Metrics) signup(path string) {
	if m != nil {
		m.signups.WithLabelValues(path).Inc()
	}
}

func (m *Metrics) invitationIssued() {
	if m != nil {
		m.invitationsIssued.Inc()
	}
}

func (m *Metrics) invitationAccepted() {
	if m != nil {
		m.invitationsAccepted.Inc()
	}
}

func (m *Metrics) invitationsPurged(n int64) {
	if m != nil && n > 0 {
		m.invitationsExpired.Add(float64(n))
	}
}

func (m *Metrics) roleChange(outcome string) {
	if m != nil {
		m.roleChanges.WithLabelValues(outcome).Inc()
	}
}
