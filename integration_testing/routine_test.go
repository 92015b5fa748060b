//go:build integration

package integration_testing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/2beens/fitroutine/internal/routine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestRoutineSchedule() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	status, body := s.doRequest(ctx, http.MethodGet, "/routine/progress?daysPerWeek=3&startDate=2024-01-01&now=2024-01-04T10:00:00Z", "", nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var progress routine.ProgressResponse
	require.NoError(t, json.Unmarshal(body, &progress))
	assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, progress.TrainingDays.Names())
	assert.InDelta(t, 2.0/3.0, float64(progress.Progress), 1e-9)

	status, _ = s.doRequest(ctx, http.MethodGet, "/routine/schedule?daysPerWeek=8&startDate=2024-01-01", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func (s *IntegrationTestSuite) TestRoutineOverview_FetchedStoredAndReset() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	userID := testUserID + 100
	token := s.newSessionToken(ctx, userID)

	status, body := s.doRequest(ctx, http.MethodGet, "/routine/overview", token, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var overview routine.WeekOverview
	require.NoError(t, json.Unmarshal(body, &overview))
	assert.Equal(t, remoteRoutineID, overview.RoutineID)
	assert.Equal(t, []string{"Monday", "Thursday"}, overview.TrainingDays.Names())
	require.Len(t, overview.Days, 2)
	assert.Equal(t, "Legs", overview.Days[0].MuscleGroups)
	assert.Equal(t, "Chest", overview.Days[1].MuscleGroups)
	// the week starts today, nothing can be completed yet
	assert.Equal(t, 0, overview.CompletedDays)
	assert.Zero(t, overview.Progress)

	// the remote routine got stored locally
	var storedUserID, daysPerWeek int
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`SELECT user_id, days_per_week FROM weekly_routine WHERE id = $1`, remoteRoutineID,
	).Scan(&storedUserID, &daysPerWeek))
	assert.Equal(t, userID, storedUserID)
	assert.Equal(t, 2, daysPerWeek)

	// served from cache now
	remoteCalls := s.remoteCalls.Load()
	status, _ = s.doRequest(ctx, http.MethodGet, "/routine/current", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, remoteCalls, s.remoteCalls.Load())

	status, body = s.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/routine/%d", remoteRoutineID), token, nil)
	require.Equal(t, http.StatusOK, status, string(body))

	var count int
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM weekly_routine WHERE user_id = $1`, userID,
	).Scan(&count))
	assert.Equal(t, 0, count)

	status, _ = s.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/routine/%d", remoteRoutineID), token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestLogout() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	token := s.newSessionToken(ctx, testUserID+200)

	status, _ := s.doRequest(ctx, http.MethodGet, "/measurement/list", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, body := s.doRequest(ctx, http.MethodPost, "/a/logout", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "logged-out", string(body))

	status, _ = s.doRequest(ctx, http.MethodGet, "/measurement/list", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
