package lib

import (
	"context"
	"errors"
	"fmt"

	"github.com/slok/fitrack/internal/app/login"
	"github.com/slok/fitrack/internal/app/logout"
	"github.com/slok/fitrack/internal/app/register"
	"github.com/slok/fitrack/internal/model"
)

// Register registers a new user. It does not log the user in.
func (c *Client) Register(ctx context.Context, r Registration) (*User, error) {
	svc, err := register.NewService(register.ServiceConfig{
		UserStore: c.store,
		Logger:    c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	user, err := svc.Run(ctx, register.Request{Registration: r})
	if err != nil {
		return nil, mapError(err)
	}

	return user, nil
}

// Login logs the user in and keeps the session. On failure the previous
// session, if any, is kept.
func (c *Client) Login(ctx context.Context, creds Credentials) (*User, error) {
	svc, err := login.NewService(login.ServiceConfig{
		UserStore: c.store,
		Sessions:  c.sessions,
		Logger:    c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	sess, err := svc.Run(ctx, login.Request{Credentials: creds})
	if err != nil {
		return nil, mapError(err)
	}

	return &sess.User, nil
}

// Logout ends the session. It returns the user that was logged in, nil when
// nobody was.
func (c *Client) Logout(ctx context.Context) (*User, error) {
	svc, err := logout.NewService(logout.ServiceConfig{
		Sessions: c.sessions,
		Logger:   c.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create service: %w", err)
	}

	user, err := svc.Run(ctx, logout.Request{})
	if err != nil {
		return nil, mapError(err)
	}

	return user, nil
}

// CurrentUser returns the logged in user, nil when nobody is logged in.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	sess, err := c.sessions.Current(ctx)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, mapError(err)
	}

	return &sess.User, nil
}
