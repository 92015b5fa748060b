//go:build integration

package integration_testing

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/2beens/fitroutine/internal/measurement"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestMeasurements() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t := s.T()

	token := s.newSessionToken(ctx, testUserID)

	measurementReq := map[string]any{
		"weight":  82.5,
		"chest":   15.0,
		"abdomen": 25.0,
		"thigh":   20.0,
	}

	// no profile yet, body fat cannot be estimated
	status, _ := s.doRequest(ctx, http.MethodPost, "/measurement/save", token, measurementReq)
	require.Equal(t, http.StatusUnprocessableEntity, status)

	status, body := s.doRequest(ctx, http.MethodPost, "/user/profile/enter", token, map[string]any{
		"dob":    "1990-03-10",
		"gender": "M",
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	status, _ = s.doRequest(ctx, http.MethodPost, "/user/profile/enter", token, map[string]any{
		"dob":    "1990-03-10",
		"gender": "M",
	})
	require.Equal(t, http.StatusConflict, status)

	status, body = s.doRequest(ctx, http.MethodPost, "/measurement/save", token, measurementReq)
	require.Equal(t, http.StatusCreated, status, string(body))

	var saved measurement.SaveResult
	require.NoError(t, json.Unmarshal(body, &saved))
	assert.NotZero(t, saved.Measurement.ID)
	assert.Greater(t, saved.Measurement.BodyFatPercent, 10.0)
	assert.Less(t, saved.Measurement.BodyFatPercent, 25.0)
	assert.Greater(t, saved.Measurement.MuscleMass, 60.0)
	require.NotNil(t, saved.Classification)

	status, body = s.doRequest(ctx, http.MethodGet, "/measurement/list", token, nil)
	require.Equal(t, http.StatusOK, status)
	var listed []measurement.Measurement
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, saved.Measurement.ID, listed[0].ID)

	var dbCount int
	require.NoError(t, s.DB.QueryRowContext(ctx,
		`SELECT count(*) FROM body_measurement WHERE user_id = $1`, testUserID,
	).Scan(&dbCount))
	assert.Equal(t, 1, dbCount)

	status, body = s.doRequest(ctx, http.MethodGet, "/measurement/export", token, nil)
	require.Equal(t, http.StatusOK, status)
	// parquet files start and end with the PAR1 magic
	require.Greater(t, len(body), 8)
	assert.Equal(t, "PAR1", string(body[:4]))
	assert.Equal(t, "PAR1", string(body[len(body)-4:]))

	status, body = s.doRequest(ctx, http.MethodPatch, "/user/profile/update", token, map[string]any{
		"gender": "F",
	})
	require.Equal(t, http.StatusOK, status, string(body))
	var profile measurement.Profile
	require.NoError(t, json.Unmarshal(body, &profile))
	assert.Equal(t, measurement.Gender("F"), profile.Gender)
	assert.Equal(t, "1990-03-10", profile.DOB.String())

	status, body = s.doRequest(ctx, http.MethodGet, "/measurement/bodyfat-chart?gender=M", "", nil)
	require.Equal(t, http.StatusOK, status)
	var chart []measurement.BodyFatRange
	require.NoError(t, json.Unmarshal(body, &chart))
	assert.Len(t, chart, 5)
}
