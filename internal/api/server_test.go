package api

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"

	"github.com/adampetrovic/ttpcount/pkg/types"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS jobs (
		id TEXT PRIMARY KEY,
		n INTEGER,
		k INTEGER,
		max_count INTEGER,
		workers INTEGER,
		mode TEXT,
		optimal BOOLEAN DEFAULT 0,
		status TEXT,
		total INTEGER DEFAULT 0,
		per_rank_json TEXT DEFAULT '[]',
		error TEXT DEFAULT '',
		started_at DATETIME,
		completed_at DATETIME
	);
	`
	_, err = db.Exec(schema)
	require.NoError(t, err)
	return db
}

func setupTestServer(db *sql.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	server := NewServer(db)
	return server.GetRouter()
}

func waitForJobTerminal(t *testing.T, router *gin.Engine, jobID string) types.JobStatusResponse {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+jobID, nil)
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var resp types.JobStatusResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		switch resp.Status {
		case "completed", "failed", "cancelled":
			return resp
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("job %s did not reach a terminal status in time", jobID)
	return types.JobStatusResponse{}
}

func TestHealthCheck(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	router := setupTestServer(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "ok", response["status"])
}

func TestJobLifecycle_SubmitGetListDelete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	router := setupTestServer(db)

	submitReq := types.SubmitJobRequest{N: 4, K: 1, Max: 1000, Workers: 1, Mode: "static"}
	body, err := json.Marshal(submitReq)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusAccepted, w.Code)

	var submitResp types.SubmitJobResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &submitResp))
	require.NotEmpty(t, submitResp.JobID)

	final := waitForJobTerminal(t, router, submitResp.JobID)
	assert.Equal(t, "completed", final.Status)
	require.NotNil(t, final.Total)
	assert.Greater(t, *final.Total, int64(0))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var listResp types.JobListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Jobs, 1)
	assert.Equal(t, submitResp.JobID, listResp.Jobs[0].JobID)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/jobs/"+submitResp.JobID, nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/jobs/"+submitResp.JobID, nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitJob_ValidationError(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	router := setupTestServer(db)

	// N is required; omitting it should trip validation before a job is
	// ever submitted to the coordinator.
	submitReq := map[string]interface{}{"mode": "bogus-mode"}
	body, err := json.Marshal(submitReq)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.Equal(t, "VALIDATION_ERROR", errResp.Code)
}

func TestCancelJob_UnknownID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	router := setupTestServer(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/does-not-exist/cancel", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteJob_UnknownID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	router := setupTestServer(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/jobs/does-not-exist", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
