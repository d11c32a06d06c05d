package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pidgeonhole/rookery-api/internal/dto"
	"github.com/pidgeonhole/rookery-api/internal/models"
)

func TestTestCaseHandler_Get(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Create(&models.Category{Name: "loops", Description: "d"}).Error)
	require.NoError(t, env.db.Create(&models.Problem{CategoryID: 1, Title: "adder", Description: "add two ints"}).Error)
	require.NoError(t, env.db.Create(&models.TestCase{ProblemID: 1, Input: "1 2", Output: "3", Types: "int int"}).Error)

	resp := env.request(t, http.MethodGet, "/api/v3/test-cases/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var testCase dto.TestCaseResponse
	decodeBody(t, resp, &testCase)
	require.Equal(t, dto.TestCaseResponse{ID: 1, ProblemID: 1, Input: "1 2", Output: "3", Types: "int int"}, testCase)

	resp = env.request(t, http.MethodGet, "/api/v3/test-cases/42", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Empty(t, readBody(t, resp))
}

func TestTestCaseHandler_Update(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Create(&models.Category{Name: "loops", Description: "d"}).Error)
	require.NoError(t, env.db.Create(&models.Problem{CategoryID: 1, Title: "adder", Description: "add two ints"}).Error)
	require.NoError(t, env.db.Create(&models.TestCase{ProblemID: 1, Input: "1 2", Output: "3", Types: "int int"}).Error)

	resp := env.request(t, http.MethodPut, "/api/v3/test-cases/1", map[string]interface{}{
		"problem_id": 1,
		"input":      "10 20",
		"output":     "30",
		"types":      "int int",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, readBody(t, resp))

	var testCase models.TestCase
	require.NoError(t, env.db.First(&testCase, 1).Error)
	require.Equal(t, "10 20", testCase.Input)

	resp = env.request(t, http.MethodPut, "/api/v3/test-cases/42", map[string]interface{}{
		"problem_id": 1,
		"input":      "i",
		"output":     "o",
		"types":      "t",
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Empty(t, readBody(t, resp))
}

func TestTestCaseHandler_UpdateRejectsMissingFields(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.db.Create(&models.Category{Name: "loops", Description: "d"}).Error)
	require.NoError(t, env.db.Create(&models.Problem{CategoryID: 1, Title: "adder", Description: "add two ints"}).Error)
	require.NoError(t, env.db.Create(&models.TestCase{ProblemID: 1, Input: "1 2", Output: "3", Types: "int int"}).Error)

	resp := env.request(t, http.MethodPut, "/api/v3/test-cases/1", map[string]interface{}{
		"problem_id": 1,
		"input":      "10 20",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Empty(t, readBody(t, resp))
}
