package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thetis_mrv/internal/app/ds"
)

type fakeLeaderboards struct {
	lastTopN int
}

func (f *fakeLeaderboards) TopEmittersByTotal(_ context.Context, topN int) ([]ds.MonitoringResult, error) {
	f.lastTopN = topN
	return []ds.MonitoringResult{}, nil
}

func (f *fakeLeaderboards) TopEmittersByDistance(_ context.Context, topN int) ([]ds.MonitoringResult, error) {
	f.lastTopN = topN
	return []ds.MonitoringResult{}, nil
}

func leaderboardRouter(fake *fakeLeaderboards) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := &LeaderboardHandler{Repository: fake}
	router.GET("/api/leaderboard/total", h.GetTopByTotalAPI)
	router.GET("/api/leaderboard/per_distance", h.GetTopByDistanceAPI)
	return router
}

func TestLeaderboardDefaultTopN(t *testing.T) {
	fake := &fakeLeaderboards{}
	router := leaderboardRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard/total", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, defaultTopN, fake.lastTopN)
}

func TestLeaderboardExplicitTopN(t *testing.T) {
	fake := &fakeLeaderboards{}
	router := leaderboardRouter(fake)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard/per_distance?top_n=3", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, fake.lastTopN)
}

func TestLeaderboardRejectsBadTopN(t *testing.T) {
	fake := &fakeLeaderboards{}
	router := leaderboardRouter(fake)

	for _, q := range []string{"abc", "0", "-5", "100000"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/leaderboard/total?top_n="+q, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "top_n=%s", q)
	}
}
