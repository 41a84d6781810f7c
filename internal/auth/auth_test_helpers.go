package auth

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/seifeddinerezgui/gethrought/internal/store"
	"github.com/seifeddinerezgui/gethrought/internal/utilities"
)

// GetAccessToken is a helper function to obtain an access token for a user by simulating a login API call.
// It takes the testing object, store, token issuer, username, and password as parameters.
// It returns the access token as a string and any error encountered during the process.
func GetAccessToken(
	t *testing.T,
	s store.Store,
	tokens *Tokens,
	username string,
	password string,
) (string, error) {
	t.Helper()
	handler := NewLocalAuthHandler(s, tokens, nil)
	rec, resp, err := utilities.SimulateAPICall(handler.LocalLoginHandler, "/login", http.MethodPost, map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}
	if rec.Code != http.StatusOK {
		return "", fmt.Errorf("login Failed: status %d, body: %s", rec.Code, rec.Body.String())
	}
	token, ok := resp["accessToken"].(string)
	if !ok {
		return "", fmt.Errorf("login Failed: no accessToken in response: %s", rec.Body.String())
	}
	return token, nil
}
