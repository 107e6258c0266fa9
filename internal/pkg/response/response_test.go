package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/leads", nil)
	return c, w
}

func TestErrorEchoesRequestID(t *testing.T) {
	c, w := testContext(t)
	c.Request.Header.Set("X-Request-ID", "req-42")

	Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code      string `json:"code"`
			Message   string `json:"message"`
			RequestID string `json:"request_id"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "LEAD_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Lead not found", body.Error.Message)
	assert.Equal(t, "req-42", body.Error.RequestID)
}

func TestErrorOmitsAbsentRequestID(t *testing.T) {
	c, w := testContext(t)

	Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	var errBody map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body["error"], &errBody))
	_, ok := errBody["request_id"]
	assert.False(t, ok, "request_id should be absent when the caller sent none")
}

func TestSuccessEnvelope(t *testing.T) {
	c, w := testContext(t)

	Success(c, http.StatusOK, gin.H{"id": 7})

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(7), body.Data.ID)
}
