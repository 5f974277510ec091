package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersTotal counts transfers reaching a status, failures labelled by error kind
	TransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "castpay_transfers_total",
			Help: "Total number of relayed transfers by status",
		},
		[]string{"status", "error_kind"},
	)

	// TransferDuration tracks time from intake to a terminal status
	TransferDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "castpay_transfer_duration_seconds",
			Help:    "Transfer processing duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"status"},
	)

	// TransferAmount tracks the amount of stablecoin relayed
	TransferAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "castpay_transfer_amount",
			Help:    "Amount of tokens relayed, in whole units",
			Buckets: []float64{0.01, 0.1, 1, 10, 100, 1000, 10000},
		},
	)

	// IntakeRejected counts transfer requests rejected before a record is created
	IntakeRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "castpay_intake_rejected_total",
			Help: "Transfer requests rejected at intake",
		},
		[]string{"reason"},
	)

	// SponsorshipsTotal counts paymaster sponsorship attempts by outcome
	SponsorshipsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "castpay_sponsorships_total",
			Help: "Gas sponsorship attempts by outcome",
		},
		[]string{"outcome"},
	)

	// ChainErrorsTotal counts failed chain calls by operation
	ChainErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "castpay_chain_errors_total",
			Help: "Total number of failed chain calls",
		},
		[]string{"operation"},
	)

	// GasUsed tracks gas used by relay transactions
	GasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "castpay_gas_used",
			Help:    "Gas used by relay transactions",
			Buckets: []float64{21000, 50000, 100000, 200000, 300000, 500000},
		},
		[]string{"operation"},
	)

	// InFlightTransfers tracks transfers accepted but not yet terminal
	InFlightTransfers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "castpay_inflight_transfers",
			Help: "Number of transfers queued or executing",
		},
	)

	// QueueDepth tracks tasks waiting for a worker
	QueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "castpay_queue_depth",
			Help: "Number of transfer tasks waiting for a worker",
		},
	)

	// StoredRecords tracks records held in the status store by status
	StoredRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "castpay_stored_records",
			Help: "Transaction records held in memory by status",
		},
		[]string{"status"},
	)

	// SweptRecords counts records deleted by the retention sweep
	SweptRecords = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "castpay_swept_records_total",
			Help: "Records deleted by the retention sweep",
		},
	)

	// HTTPRateLimited counts requests rejected by the per-client limiter
	HTTPRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "castpay_http_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		},
	)
)
