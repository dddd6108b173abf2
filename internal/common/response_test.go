package common

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponse_IncludesDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	ErrorResponse(c, 404, "Notice not found", errors.New("record not found"))

	assert.Equal(t, 404, rec.Code)

	var body struct {
		Error ErrorInfo `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NOT_FOUND", body.Error.Code)
	assert.Equal(t, "Notice not found", body.Error.Message)
	assert.Equal(t, "record not found", body.Error.Details)
}

func TestErrorResponse_NilErrorOmitsDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	ErrorResponse(c, 400, "Missing token", nil)

	var body struct {
		Error ErrorInfo `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BAD_REQUEST", body.Error.Code)
	assert.Empty(t, body.Error.Details)
}
