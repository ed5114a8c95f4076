//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/activities"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/auth"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/fitness"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/progress"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) tokenFor(userID string) string {
	token, err := s.verifier.Issue(userID, time.Hour, time.Now())
	s.Require().NoError(err)
	return token
}

func (s *IntegrationTestSuite) do(
	ctx context.Context,
	method, path, token string,
	body any,
	headers map[string]string,
) (int, []byte) {
	t := s.T()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBytes
}

func (s *IntegrationTestSuite) sportIDByCode(ctx context.Context, token, code string) string {
	status, body := s.do(ctx, http.MethodGet, "/api/sports", token, nil, nil)
	s.Require().Equal(http.StatusOK, status)

	var resp struct {
		Data []fitness.Sport `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(body, &resp))
	for _, sport := range resp.Data {
		if sport.Code == code {
			return sport.ID
		}
	}
	s.T().Fatalf("sport %s not found", code)
	return ""
}

func (s *IntegrationTestSuite) TestAnnualProgress() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	token := s.tokenFor(testUserID)

	status, body := s.do(ctx, http.MethodGet, "/api/progress/annual?year=2024&metric_type=distance", token, nil, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var global progress.AnnualProgress
	require.NoError(t, json.Unmarshal(body, &global))
	assert.Equal(t, fitness.ScopeGlobal, global.ScopeType)
	require.Len(t, global.Series, 366)
	assert.Equal(t, "2024-01-01", global.Series[0].Date)

	byDate := map[string]float64{}
	for _, p := range global.Series {
		byDate[p.Date] = p.Value
	}
	assert.Equal(t, 0.0, byDate["2024-03-09"])
	assert.Equal(t, 5000.0, byDate["2024-03-10"])
	assert.Equal(t, 15000.0, byDate["2024-03-12"])
	assert.Equal(t, 55000.0, global.Series[365].Value)

	runningID := s.sportIDByCode(ctx, token, "running")
	status, body = s.do(ctx, http.MethodGet,
		fmt.Sprintf("/api/progress/annual?year=2024&metric_type=distance&sport_id=%s", runningID), token, nil, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var perSport progress.AnnualProgress
	require.NoError(t, json.Unmarshal(body, &perSport))
	assert.Equal(t, fitness.ScopePerSport, perSport.ScopeType)
	assert.Equal(t, 15000.0, perSport.Series[len(perSport.Series)-1].Value)

	status, _ = s.do(ctx, http.MethodGet,
		"/api/progress/annual?year=2024&metric_type=distance&sport_id=00000000-0000-0000-0000-000000000000", token, nil, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.do(ctx, http.MethodGet, "/api/progress/annual?year=2024&metric_type=distance", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestGoalsLifecycle() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	token := s.tokenFor("a3b7e0c2-1d44-4f9a-8b6e-5c2d1e0f9a88")

	createPayload := map[string]any{
		"scope_type":   "global",
		"year":         2024,
		"metric_type":  "distance",
		"target_value": 1000,
	}
	status, body := s.do(ctx, http.MethodPost, "/api/goals", token, createPayload, nil)
	require.Equal(t, http.StatusCreated, status, string(body))

	var goal fitness.Goal
	require.NoError(t, json.Unmarshal(body, &goal))
	require.NotEmpty(t, goal.ID)

	status, _ = s.do(ctx, http.MethodPost, "/api/goals", token, createPayload, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, body = s.do(ctx, http.MethodPatch, "/api/goals/"+goal.ID, token, map[string]any{"target_value": 1500}, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	status, body = s.do(ctx, http.MethodGet, "/api/goals/"+goal.ID+"/history", token, nil, nil)
	require.Equal(t, http.StatusOK, status)
	var history pkg.Paginated[fitness.GoalHistory]
	require.NoError(t, json.Unmarshal(body, &history))
	require.Equal(t, 1, history.Total)
	assert.Equal(t, fitness.MetricDistance, history.Data[0].PreviousMetricType)

	status, body = s.do(ctx, http.MethodGet, "/api/goals?year=2024", token, nil, nil)
	require.Equal(t, http.StatusOK, status)
	var goals pkg.Paginated[fitness.Goal]
	require.NoError(t, json.Unmarshal(body, &goals))
	assert.Equal(t, 1, goals.Total)

	status, _ = s.do(ctx, http.MethodDelete, "/api/goals/"+goal.ID, token, nil, nil)
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = s.do(ctx, http.MethodGet, "/api/goals/"+goal.ID, token, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestGenerateActivities() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	token := s.tokenFor("c9e2a4b1-6f30-4d2e-a7c8-0b1d2e3f4a55")

	status, body := s.do(ctx, http.MethodPost, "/api/activities/generate", token, map[string]any{}, nil)
	require.Equal(t, http.StatusCreated, status, string(body))

	var result activities.GenerateResult
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, activities.GeneratedCount, result.CreatedCount)

	status, body = s.do(ctx, http.MethodGet, "/api/activities?limit=5&sort_by=distance&sort_dir=desc", token, nil, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var page pkg.Paginated[activities.ListItem]
	require.NoError(t, json.Unmarshal(body, &page))
	assert.Equal(t, activities.GeneratedCount, page.Total)
	require.Len(t, page.Data, 5)
	assert.GreaterOrEqual(t, page.Data[0].Distance, page.Data[4].Distance)

	status, _ = s.do(ctx, http.MethodPost, "/api/activities/generate", token,
		map[string]any{"primary_sports": []string{"curling"}}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = s.do(ctx, http.MethodPost, "/api/activities/generate", token, map[string]any{}, nil)
	assert.Equal(t, http.StatusTooManyRequests, status, string(body))
}

func (s *IntegrationTestSuite) TestSportsAdmin() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	payload := map[string]any{"code": "rowing", "name": "Rowing"}

	status, _ := s.do(ctx, http.MethodPost, "/api/sports", "", payload, nil)
	assert.Equal(t, http.StatusForbidden, status)

	adminHeader := map[string]string{auth.AdminSecretHeader: testAdminSecret}
	status, body := s.do(ctx, http.MethodPost, "/api/sports", "", payload, adminHeader)
	require.Equal(t, http.StatusCreated, status, string(body))

	status, _ = s.do(ctx, http.MethodPost, "/api/sports", "", payload, adminHeader)
	assert.Equal(t, http.StatusConflict, status)

	assert.NotEmpty(t, s.sportIDByCode(ctx, s.tokenFor(testUserID), "rowing"))
}

func (s *IntegrationTestSuite) TestLogoutRevokesToken() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	token := s.tokenFor("d4f5a6b7-8c9d-4e0f-9a1b-2c3d4e5f6a77")

	status, _ := s.do(ctx, http.MethodGet, "/api/goals", token, nil, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = s.do(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
	require.Equal(t, http.StatusNoContent, status)

	status, _ = s.do(ctx, http.MethodGet, "/api/goals", token, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (s *IntegrationTestSuite) TestDeleteAccount() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	t := s.T()
	userID := "e1a2b3c4-d5e6-4f70-8a9b-0c1d2e3f4a5b"
	token := s.tokenFor(userID)

	status, _ := s.do(ctx, http.MethodPost, "/api/goals", token, map[string]any{
		"scope_type":   "global",
		"year":         2025,
		"metric_type":  "time",
		"target_value": 100,
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	status, body := s.do(ctx, http.MethodPost, "/api/auth/delete-account", token, nil, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var resp struct {
		Deleted auth.DeletedCounts `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, int64(1), resp.Deleted.Goals)

	var remaining int
	require.NoError(t, s.DB.QueryRowContext(ctx, `SELECT count(*) FROM goals WHERE user_id = $1`, userID).Scan(&remaining))
	assert.Zero(t, remaining)

	status, _ = s.do(ctx, http.MethodGet, "/api/goals", token, nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
