package postgres

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolCollector(t *testing.T) {
	c := &PoolCollector{stats: func() PoolStats {
		return PoolStats{TotalConns: 4, IdleConns: 3, AcquiredConns: 1, MaxConns: 25, AcquireCount: 42, AcquireWait: 0.5}
	}}

	assert.Equal(t, 6, testutil.CollectAndCount(c))

	expected := `
# HELP advocates_db_pool_acquired_conns Connections currently checked out.
# TYPE advocates_db_pool_acquired_conns gauge
advocates_db_pool_acquired_conns 1
# HELP advocates_db_pool_max_conns Configured pool size.
# TYPE advocates_db_pool_max_conns gauge
advocates_db_pool_max_conns 25
# HELP advocates_db_pool_acquire_total Successful connection acquisitions.
# TYPE advocates_db_pool_acquire_total counter
advocates_db_pool_acquire_total 42
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected),
		"advocates_db_pool_acquired_conns",
		"advocates_db_pool_max_conns",
		"advocates_db_pool_acquire_total",
	))
}
