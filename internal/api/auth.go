package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// User is the account entity returned by the auth endpoints.
type User struct {
	ID              json.Number `json:"id"`
	Username        string      `json:"username"`
	FavouriteGenres []string    `json:"favourite_genres,omitempty"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registration struct {
	Username        string   `json:"username"`
	Password        string   `json:"password"`
	FavouriteGenres []string `json:"favourite_genres"`
}

// Login authenticates and returns the account. Error mapping follows the
// service: ErrBadRequest for a missing username, ErrUnauthorized for a
// wrong password, ErrNotFound for an unknown username.
func (c *Client) Login(ctx context.Context, username, password string) (User, error) {
	var u User
	body := credentials{Username: username, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, body, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Register creates a new account. Returns ErrConflict when the username
// is taken.
func (c *Client) Register(ctx context.Context, username, password string, favouriteGenres []string) (User, error) {
	var u User
	body := registration{Username: username, Password: password, FavouriteGenres: favouriteGenres}
	if err := c.doJSON(ctx, http.MethodPost, "/users", nil, body, &u); err != nil {
		return User{}, err
	}
	return u, nil
}
