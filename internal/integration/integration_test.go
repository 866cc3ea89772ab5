package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipehub/backend/config"
	"github.com/recipehub/backend/internal/server"
	"github.com/recipehub/backend/internal/testhelpers"
)

// TestRecipeLifecycle runs the full create/read/update/delete cycle against
// a real postgres database.
func TestRecipeLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testhelpers.SetupTestDatabase(t)

	cfg := &config.Config{ServerPort: "8080", JWTSecret: "test-secret"}
	srv := server.New(cfg, db, nil, nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	// Register a user
	token := registerUser(t, ts.URL)

	// Create
	resp := postJSON(t, ts.URL+"/api/v1/recipes", token, map[string]interface{}{
		"name":                 "Soup",
		"time_to_cook_hours":   0,
		"time_to_cook_minutes": 30,
		"method":               "Boil",
		"ingredients": []map[string]interface{}{
			{"name": "Water", "quantity": 1, "unit": "L"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created struct {
		ID uint `json:"id"`
	}
	decode(t, resp, &created)
	require.NotZero(t, created.ID)

	// Read detail
	resp = get(t, fmt.Sprintf("%s/api/v1/recipes/%d", ts.URL, created.ID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var detail struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Method      string `json:"method"`
		Ingredients []struct {
			Name     string `json:"name"`
			Quantity string `json:"quantity"`
		} `json:"ingredients"`
	}
	decode(t, resp, &detail)
	assert.Equal(t, "Soup", detail.Name)
	assert.Equal(t, "Boil", detail.Method)
	require.Len(t, detail.Ingredients, 1)
	assert.Equal(t, "1 L", detail.Ingredients[0].Quantity)

	// List
	resp = get(t, ts.URL+"/api/v1/recipes")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Recipes []struct {
			Name       string `json:"name"`
			TimeToCook string `json:"time_to_cook"`
		} `json:"recipes"`
	}
	decode(t, resp, &list)
	require.Len(t, list.Recipes, 1)
	assert.Equal(t, "30 minutes", list.Recipes[0].TimeToCook)

	// Partial update: only the ingredient quantity changes
	resp = putJSON(t, fmt.Sprintf("%s/api/v1/recipes/%d", ts.URL, created.ID), token, map[string]interface{}{
		"ingredients": []map[string]interface{}{
			{"quantity": 2},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &detail)
	require.Len(t, detail.Ingredients, 1)
	assert.Equal(t, "Water", detail.Ingredients[0].Name)
	assert.Equal(t, "2 L", detail.Ingredients[0].Quantity)

	// Soft delete hides the recipe from reads
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/api/v1/recipes/%d", ts.URL, created.ID), nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = delResp.Body.Close() }()
	require.Equal(t, http.StatusOK, delResp.StatusCode)

	resp = get(t, fmt.Sprintf("%s/api/v1/recipes/%d", ts.URL, created.ID))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = get(t, ts.URL+"/api/v1/recipes")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &list)
	assert.Empty(t, list.Recipes)
}

func registerUser(t *testing.T, baseURL string) string {
	resp := postJSON(t, baseURL+"/api/v1/auth/register", "", map[string]interface{}{
		"name":     "Integration Tester",
		"email":    "tester@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	decode(t, resp, &body)
	require.NotEmpty(t, body.Token)
	return body.Token
}

func postJSON(t *testing.T, url, token string, payload interface{}) *http.Response {
	return sendJSON(t, http.MethodPost, url, token, payload)
}

func putJSON(t *testing.T, url, token string, payload interface{}) *http.Response {
	return sendJSON(t, http.MethodPut, url, token, payload)
}

func sendJSON(t *testing.T, method, url, token string, payload interface{}) *http.Response {
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(method, url, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, url string) *http.Response {
	resp, err := http.Get(url)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	defer func() { _ = resp.Body.Close() }()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
