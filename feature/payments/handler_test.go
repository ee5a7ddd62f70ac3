package payments

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp() *fiber.App {
	app := fiber.New()
	svc := NewService(zap.NewNop(), nil, nil)
	svc.newRunID = func() string { return "run-1" }
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func multipartRequest(t *testing.T, files map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for field, content := range files {
		part, err := w.CreateFormFile(field, field+".csv")
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/payments/reconcile", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestHandleReconcile(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(multipartRequest(t, map[string]string{
		"members":  membersCSV,
		"payments": paymentsCSV,
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "run-1", body["run_id"])
	assert.Len(t, body["cleaned"], 2)

	rejected := body["rejected"].([]any)
	require.Len(t, rejected, 1)
	first := rejected[0].(map[string]any)
	assert.Equal(t, "M2", first["memberId"])
	assert.Equal(t, "unknown_member", first["reason"])
	assert.Nil(t, first["expectedFullName"])

	summary := body["summary"].(map[string]any)
	assert.Equal(t, "150", summary["total_paid"])
}

func TestHandleReconcile_MissingFile(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(multipartRequest(t, map[string]string{"members": membersCSV}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleReconcile_Malformed(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(multipartRequest(t, map[string]string{
		"members":  membersCSV,
		"payments": "memberId,fullName\nM1,John Smith\n",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleReconcile_EmptyDataset(t *testing.T) {
	app := setupTestApp()

	resp, err := app.Test(multipartRequest(t, map[string]string{
		"members":  membersCSV,
		"payments": "memberId,fullName,paidAmount\nM1,Jane Doe,20\n",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "no data to report", body["error"])
	assert.Len(t, body["rejected"], 1)
}

func TestLoader(t *testing.T) {
	feature := NewFeature(NewService(zap.NewNop(), nil, nil))

	assert.Equal(t, "payments", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
