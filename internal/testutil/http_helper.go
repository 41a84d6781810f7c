// Package testutil provides utility functions for testing HTTP handlers.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// MakeJSONRequest is a helper function for making JSON requests in tests.
// An empty authToken sends no Authorization header.
func MakeJSONRequest(body gin.H, authToken string, r *gin.Engine, endpoint string, method string) (*httptest.ResponseRecorder, map[string]interface{}) {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	return MakeRawRequest(payload, authToken, r, endpoint, method)
}

// MakeRawRequest sends payload as is, for bodies that are not valid JSON.
func MakeRawRequest(payload []byte, authToken string, r *gin.Engine, endpoint string, method string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req, _ := http.NewRequest(method, endpoint, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

// MakeJSONListRequest is MakeJSONRequest for endpoints answering with a JSON array.
func MakeJSONListRequest(authToken string, r *gin.Engine, endpoint string) (*httptest.ResponseRecorder, []map[string]interface{}) {
	req, _ := http.NewRequest(http.MethodGet, endpoint, nil)
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	resp := []map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

// StringPtr is a helper function to get a pointer to a string
func StringPtr(s string) *string {
	return &s
}
