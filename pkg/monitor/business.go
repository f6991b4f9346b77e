package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
)

// 密钥业务指标，source 取值: default, seed, mnemonic
var (
	KeysConstructed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hdkey_constructed_total",
		Help: "The total number of HD private key handles constructed",
	}, []string{"source"})

	KeyConstructionFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hdkey_construction_failures_total",
		Help: "The total number of key constructions rejected by the HD key library",
	}, []string{"source"})

	LiveHandles = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "hdkey_live_handles",
		Help: "Handles currently owned by the registry",
	})
)
