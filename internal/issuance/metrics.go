package issuance

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	executedCommandCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stablemesh_issuer",
			Subsystem: "issuance",
			Name:      "executed_commands",
			Help:      "commands executed successfully, by method",
		}, []string{"method"},
	)

	failedCommandCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stablemesh_issuer",
			Subsystem: "issuance",
			Name:      "failed_commands",
			Help:      "commands rejected or aborted, by method",
		}, []string{"method"},
	)

	guardVerdictCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stablemesh_issuer",
			Subsystem: "issuance",
			Name:      "guard_verdicts",
			Help:      "pre-transfer guard verdicts, by outcome",
		}, []string{"verdict"},
	)
)

func init() {
	prometheus.MustRegister(executedCommandCounter)
	prometheus.MustRegister(failedCommandCounter)
	prometheus.MustRegister(guardVerdictCounter)
}
