package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// IntakeSubmissions counts résumé submissions by resulting verdict.
	IntakeSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nexuserv",
		Name:      "intake_submissions_total",
		Help:      "Number of CV submissions processed, labeled by verdict.",
	}, []string{"estado"})

	// ClassifierErrors counts failed calls to the eligibility classifier.
	ClassifierErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nexuserv",
		Name:      "classifier_errors_total",
		Help:      "Number of classifier calls that returned an error.",
	})

	// EmailSendErrors counts notification emails that could not be delivered.
	EmailSendErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "nexuserv",
		Name:      "email_send_errors_total",
		Help:      "Number of notification emails that failed to send.",
	})
)
