package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	poolTotalConnsDesc    = prometheus.NewDesc("advocates_db_pool_total_conns", "Connections currently in the pool.", nil, nil)
	poolIdleConnsDesc     = prometheus.NewDesc("advocates_db_pool_idle_conns", "Idle connections in the pool.", nil, nil)
	poolAcquiredConnsDesc = prometheus.NewDesc("advocates_db_pool_acquired_conns", "Connections currently checked out.", nil, nil)
	poolMaxConnsDesc      = prometheus.NewDesc("advocates_db_pool_max_conns", "Configured pool size.", nil, nil)
	poolAcquireCountDesc  = prometheus.NewDesc("advocates_db_pool_acquire_total", "Successful connection acquisitions.", nil, nil)
	poolAcquireWaitDesc   = prometheus.NewDesc("advocates_db_pool_acquire_wait_seconds_total", "Time spent waiting for a connection.", nil, nil)
)

// PoolStats is the subset of pgxpool statistics exported as metrics.
type PoolStats struct {
	TotalConns    int32
	IdleConns     int32
	AcquiredConns int32
	MaxConns      int32
	AcquireCount  int64
	AcquireWait   float64 // seconds
}

// PoolCollector exposes connection pool statistics to Prometheus.
type PoolCollector struct {
	stats func() PoolStats
}

var _ prometheus.Collector = (*PoolCollector)(nil)

// NewPoolCollector creates a collector reading pool.Stat on every scrape.
func NewPoolCollector(pool *pgxpool.Pool) *PoolCollector {
	return &PoolCollector{stats: func() PoolStats {
		s := pool.Stat()
		return PoolStats{
			TotalConns:    s.TotalConns(),
			IdleConns:     s.IdleConns(),
			AcquiredConns: s.AcquiredConns(),
			MaxConns:      s.MaxConns(),
			AcquireCount:  s.AcquireCount(),
			AcquireWait:   s.AcquireDuration().Seconds(),
		}
	}}
}

func (*PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- poolTotalConnsDesc
	ch <- poolIdleConnsDesc
	ch <- poolAcquiredConnsDesc
	ch <- poolMaxConnsDesc
	ch <- poolAcquireCountDesc
	ch <- poolAcquireWaitDesc
}

func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	ch <- prometheus.MustNewConstMetric(poolTotalConnsDesc, prometheus.GaugeValue, float64(s.TotalConns))
	ch <- prometheus.MustNewConstMetric(poolIdleConnsDesc, prometheus.GaugeValue, float64(s.IdleConns))
	ch <- prometheus.MustNewConstMetric(poolAcquiredConnsDesc, prometheus.GaugeValue, float64(s.AcquiredConns))
	ch <- prometheus.MustNewConstMetric(poolMaxConnsDesc, prometheus.GaugeValue, float64(s.MaxConns))
	ch <- prometheus.MustNewConstMetric(poolAcquireCountDesc, prometheus.CounterValue, float64(s.AcquireCount))
	ch <- prometheus.MustNewConstMetric(poolAcquireWaitDesc, prometheus.CounterValue, s.AcquireWait)
}
