package utils_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	t.Run("http error keeps code and message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		utils.WriteError(rec, utils.Forbidden("not allowed"))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "not allowed", body["message"])
	})

	t.Run("other errors are hidden behind a generic message", func(t *testing.T) {
		rec := httptest.NewRecorder()
		utils.WriteError(rec, errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
		assert.Contains(t, rec.Body.String(), "could not be completed")
	})
}
