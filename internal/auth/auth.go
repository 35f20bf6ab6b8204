package auth

import (
	"errors"
	"strings"
	"sync"
)

var (
	ErrInvalidCredentials = errors.New("email and password are required")
	ErrInvalidName        = errors.New("name is required")
)

// User is the identity attached to an active session.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Identity is consulted once when a checkout session is opened.
type Identity interface {
	IsSessionActive() bool
	CurrentUser() (User, bool)
}

// MockIdentity simulates an authentication provider: any well-formed
// credentials succeed and produce a stub user. Replace with a real
// provider integration when one exists.
type MockIdentity struct {
	mu   sync.RWMutex
	user *User
}

func NewMockIdentity() *MockIdentity {
	return &MockIdentity{}
}

func (m *MockIdentity) Login(email, password string) (User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}
	user := User{
		ID:    "1",
		Name:  "John Doe",
		Email: email,
		Phone: "+254700000000",
	}
	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
	return user, nil
}

func (m *MockIdentity) Register(name, email, password string) (User, error) {
	if strings.TrimSpace(name) == "" {
		return User{}, ErrInvalidName
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}
	user := User{
		ID:    "1",
		Name:  name,
		Email: email,
	}
	m.mu.Lock()
	m.user = &user
	m.mu.Unlock()
	return user, nil
}

func (m *MockIdentity) Logout() {
	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()
}

func (m *MockIdentity) IsSessionActive() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user != nil
}

func (m *MockIdentity) CurrentUser() (User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return User{}, false
	}
	return *m.user, true
}
