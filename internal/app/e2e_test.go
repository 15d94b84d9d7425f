//go:build e2e

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	advocaterepo "github.com/heartmarshall/advocates-backend/internal/adapter/postgres/advocate"
	"github.com/heartmarshall/advocates-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/advocates-backend/internal/app/seeder"
	"github.com/heartmarshall/advocates-backend/internal/config"
)

type e2ePage struct {
	Data []struct {
		ID          int64    `json:"id"`
		FirstName   string   `json:"firstName"`
		LastName    string   `json:"lastName"`
		City        string   `json:"city"`
		Specialties []string `json:"specialties"`
		CreatedAt   string   `json:"createdAt"`
	} `json:"data"`
	Pagination struct {
		Page       int  `json:"page"`
		Limit      int  `json:"limit"`
		Total      int  `json:"total"`
		TotalPages int  `json:"totalPages"`
		HasNext    bool `json:"hasNext"`
		HasPrev    bool `json:"hasPrev"`
	} `json:"pagination"`
	Query *string `json:"query"`
}

func getPage(t *testing.T, srv *httptest.Server, path string) (int, e2ePage) {
	t.Helper()
	resp, err := srv.Client().Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var page e2ePage
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	}
	return resp.StatusCode, page
}

func TestE2E_PostgresDirectory(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	testhelper.LockAdvocates(t, pool)
	ctx := context.Background()

	p := seeder.NewPipeline(discardLogger(), advocaterepo.New(pool), seeder.Config{PhoneRegion: seeder.DefaultPhoneRegion})
	require.NoError(t, p.Run(ctx))

	cfg := testConfig()
	cfg.Database = config.DatabaseConfig{
		Driver:      config.DriverPostgres,
		DSN:         testhelper.DSN(t),
		MaxConns:    4,
		MinConns:    1,
		AutoMigrate: true,
	}
	st, err := openStore(ctx, cfg.Database, discardLogger())
	require.NoError(t, err)
	t.Cleanup(st.close)

	handler, stop := newHandler(cfg, discardLogger(), st, prometheus.NewRegistry())
	t.Cleanup(stop)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	records, err := seeder.LoadDataset("")
	require.NoError(t, err)

	t.Run("list first page", func(t *testing.T) {
		code, page := getPage(t, srv, "/advocates?limit=4")
		require.Equal(t, http.StatusOK, code)
		assert.Len(t, page.Data, 4)
		assert.Equal(t, len(records), page.Pagination.Total)
		assert.False(t, page.Pagination.HasPrev)
		assert.True(t, page.Pagination.HasNext)
		assert.NotEmpty(t, page.Data[0].CreatedAt)
		for i := 1; i < len(page.Data); i++ {
			assert.Less(t, page.Data[i-1].ID, page.Data[i].ID)
		}
	})

	t.Run("search oncology austin", func(t *testing.T) {
		code, page := getPage(t, srv, "/advocates/search?q=oncology+austin")
		require.Equal(t, http.StatusOK, code)
		require.NotEmpty(t, page.Data)
		for _, a := range page.Data {
			assert.Equal(t, "Austin", a.City)
		}
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		_, lower := getPage(t, srv, "/advocates/search?q=austin")
		_, upper := getPage(t, srv, "/advocates/search?q=AUSTIN")
		assert.Equal(t, lower.Pagination.Total, upper.Pagination.Total)
		assert.Positive(t, lower.Pagination.Total)
	})

	t.Run("like wildcards are literal", func(t *testing.T) {
		code, page := getPage(t, srv, "/advocates/search?q=%25")
		require.Equal(t, http.StatusOK, code)
		assert.Zero(t, page.Pagination.Total)
	})

	t.Run("page past the end", func(t *testing.T) {
		code, page := getPage(t, srv, "/advocates?page=1000&limit=50")
		require.Equal(t, http.StatusOK, code)
		assert.Empty(t, page.Data)
		assert.False(t, page.Pagination.HasNext)
		assert.True(t, page.Pagination.HasPrev)
	})

	t.Run("validation rejects before querying", func(t *testing.T) {
		code, _ := getPage(t, srv, "/advocates/search?q=1+UNION+SELECT+1")
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("ready pings postgres", func(t *testing.T) {
		resp, err := srv.Client().Get(srv.URL + "/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
