package api

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// Login exchanges a username and password for a bearer token (unauthenticated).
func (c *Client) Login(username, password string) (*Token, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	data, err := c.post("/token", form)
	if err != nil {
		return nil, err
	}
	token, err := decodeOne[Token](data)
	if err != nil {
		return nil, err
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("login response missing access_token")
	}
	return token, nil
}

// Health calls the API root and returns its greeting.
func (c *Client) Health() (string, error) {
	data, err := c.get("/")
	if err != nil {
		return "", err
	}

	var payload struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return payload.Msg, nil
}
