package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/invest-hub/backend/pkg/config"
	"github.com/wonny/invest-hub/backend/pkg/logger"
)

func TestParseHorizons(t *testing.T) {
	defaults := []int{1, 7, 30}

	// 빈 값이면 기본 horizon
	horizons, err := parseHorizons("", defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, horizons)

	horizons, err = parseHorizons("1,7,30", defaults)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7, 30}, horizons)

	horizons, err = parseHorizons(" 5 , 14 ", defaults)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 14}, horizons)
}

func TestParseHorizons_Invalid(t *testing.T) {
	defaults := []int{1, 7, 30}

	for _, raw := range []string{"abc", "0", "-3", "1,,7", "1,x"} {
		_, err := parseHorizons(raw, defaults)
		assert.Error(t, err, "raw=%q", raw)
	}
}

func TestGetRecommendations_InvalidRiskProfile(t *testing.T) {
	cfg := &config.Config{Env: "development", LogLevel: "error", LogFormat: "json"}
	h := NewInsightsHandler(nil, nil, nil, nil, nil, cfg, logger.New(cfg))

	// 저장소 조회 전에 경계에서 거부되어야 함
	req := httptest.NewRequest(http.MethodGet, "/api/ml/recommendations?risk_profile=yolo", nil)
	rec := httptest.NewRecorder()
	h.GetRecommendations(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "risk_profile")
}

func TestRiskProfileTolerance_Enum(t *testing.T) {
	for _, profile := range []string{"conservative", "moderate", "aggressive"} {
		_, ok := riskProfileTolerance[profile]
		assert.True(t, ok, "profile=%q", profile)
	}
	_, ok := riskProfileTolerance["balanced"]
	assert.False(t, ok)
}
