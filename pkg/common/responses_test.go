package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name string `json:"name"`
}

func TestParseJSONBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		max     int64
		wantErr string
	}{
		{name: "valid", body: `{"name":"combo"}` + "\n", max: MaxBodyBytes},
		{name: "empty", body: "", max: MaxBodyBytes, wantErr: "body is empty"},
		{name: "unknown field", body: `{"name":"combo","extra":1}`, max: MaxBodyBytes, wantErr: "unknown field"},
		{name: "trailing value", body: `{"name":"a"}{"name":"b"}`, max: MaxBodyBytes, wantErr: "single JSON value"},
		{name: "too large", body: `{"name":"` + strings.Repeat("x", 64) + `"}`, max: 16, wantErr: "exceeds 16 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload

			err := ParseJSONBody(httptest.NewRecorder(), req, &p, tt.max)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, "combo", p.Name)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRespondWithMeta(t *testing.T) {
	total := int64(21)
	rec := httptest.NewRecorder()

	RespondWithMeta(rec, http.StatusOK, []string{"a"}, &MetaInfo{NextCursor: "abc", Total: &total})

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var body struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
		Meta    MetaInfo `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, []string{"a"}, body.Data)
	assert.Equal(t, "abc", body.Meta.NextCursor)
	require.NotNil(t, body.Meta.Total)
	assert.Equal(t, int64(21), *body.Meta.Total)
}

func TestRespondNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNoContent(rec)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
