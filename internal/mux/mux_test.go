package mux

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertGet(t *testing.T, ts *httptest.Server, path string, payload interface{}, expectedStatus int) {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, expectedStatus, resp.StatusCode)
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(payload))
}

func TestNewMux_UnknownPath(t *testing.T) {
	ts := httptest.NewServer(NewMux("v0.0.0"))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/nope")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
