// Package session holds the authenticated identity for one browser
// context: an opaque bearer token plus the user profile, restored from
// the persisted store before any guarded content is served.
package session

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/shophub-io/storefront/api"
	"github.com/shophub-io/storefront/models"
	"github.com/shophub-io/storefront/store"
	"github.com/sirupsen/logrus"
)

// State of the session machine. Authenticated goes back to Anonymous
// only through Logout; token expiry surfaces as backend 401s.
type State int

const (
	Loading State = iota
	Anonymous
	Authenticated
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	default:
		return "loading"
	}
}

type Manager struct {
	store     store.Store
	client    *api.Client
	contextID string
	log       *logrus.Entry

	state State
	token string
	user  *models.User
}

func NewManager(s store.Store, client *api.Client, contextID string, log *logrus.Logger) *Manager {
	return &Manager{
		store:     s,
		client:    client,
		contextID: contextID,
		log:       log.WithField("component", "session"),
		state:     Loading,
	}
}

// Restore reads any persisted token/user pair. The session is only
// adopted when both halves are present; a partial pair restores as
// Anonymous. A store failure keeps the manager in Loading so guards
// never mistake "not yet restored" for "confirmed anonymous".
func (m *Manager) Restore(ctx context.Context) error {
	rawToken, errToken := m.store.Get(ctx, m.contextID, store.KeyToken)
	rawUser, errUser := m.store.Get(ctx, m.contextID, store.KeyUser)

	if isStoreFailure(errToken) || isStoreFailure(errUser) {
		err := errToken
		if err == nil {
			err = errUser
		}
		m.log.WithError(err).Warn("session restore failed")
		return err
	}

	if errToken != nil || errUser != nil {
		m.state = Anonymous
		return nil
	}

	var token string
	var user models.User
	if json.Unmarshal(rawToken, &token) != nil || json.Unmarshal(rawUser, &user) != nil || token == "" {
		m.state = Anonymous
		return nil
	}

	m.token = token
	m.user = &user
	m.state = Authenticated
	return nil
}

func isStoreFailure(err error) bool {
	return err != nil && !errors.Is(err, store.ErrNotFound)
}

// Login exchanges credentials with the backend and adopts the returned
// session. Errors propagate untouched; the caller decides how to show
// them.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	resp, err := m.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user := resp.User
	if user == nil {
		// Backend omitted the profile; synthesize the minimum the UI needs.
		user = &models.User{Email: email, FirstName: localPart(email), Role: models.RoleCustomer}
	}
	m.adopt(ctx, resp.Token, user)
	return resp, nil
}

// Register creates an account. The session is adopted only when the
// response carries both a token and a user.
func (m *Manager) Register(ctx context.Context, input models.RegisterInput, password string) (*models.AuthResponse, error) {
	resp, err := m.client.Register(ctx, input, password)
	if err != nil {
		return nil, err
	}
	if resp.Token != "" && resp.User != nil {
		m.adopt(ctx, resp.Token, resp.User)
	}
	return resp, nil
}

// Logout clears the in-memory session and deletes the persisted keys.
func (m *Manager) Logout(ctx context.Context) {
	m.token = ""
	m.user = nil
	m.state = Anonymous

	if err := m.store.Delete(ctx, m.contextID, store.KeyToken); err != nil {
		m.log.WithError(err).Warn("failed to delete persisted token")
	}
	if err := m.store.Delete(ctx, m.contextID, store.KeyUser); err != nil {
		m.log.WithError(err).Warn("failed to delete persisted user")
	}
}

func (m *Manager) adopt(ctx context.Context, token string, user *models.User) {
	m.token = token
	m.user = user
	m.state = Authenticated

	if raw, err := json.Marshal(token); err == nil {
		if err := m.store.Set(ctx, m.contextID, store.KeyToken, raw); err != nil {
			m.log.WithError(err).Warn("failed to persist token")
		}
	}
	if raw, err := json.Marshal(user); err == nil {
		if err := m.store.Set(ctx, m.contextID, store.KeyUser, raw); err != nil {
			m.log.WithError(err).Warn("failed to persist user")
		}
	}
}

func (m *Manager) State() State          { return m.state }
func (m *Manager) Token() string         { return m.token }
func (m *Manager) User() *models.User    { return m.user }
func (m *Manager) IsAuthenticated() bool { return m.state == Authenticated }

func (m *Manager) IsAdmin() bool {
	return m.user != nil && m.user.Role == models.RoleAdmin
}

func localPart(email string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i]
		}
	}
	return email
}
