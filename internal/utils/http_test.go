package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		w := httptest.NewRecorder()

		n, err := WriteJSON(w, map[string]string{"status": "ok"}, 201)
		require.NoError(t, err)
		assert.Positive(t, n)

		assert.Equal(t, 201, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	})

	t.Run("unmarshalable data", func(t *testing.T) {
		w := httptest.NewRecorder()

		_, err := WriteJSON(w, func() {}, 200)
		require.Error(t, err)
		assert.Equal(t, 500, w.Code)
	})
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", want: ""},
		{name: "scheme only", header: "Bearer", want: ""},
		{name: "scheme with trailing space only", header: "Bearer ", want: ""},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", want: ""},
		{name: "lowercase scheme not accepted", header: "bearer abc", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseBearerToken(tc.header))
		})
	}
}
