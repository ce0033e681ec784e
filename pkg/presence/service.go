package presence

import (
	"onlinetracker/pkg/session"
)

// ServiceInterface is what the HTTP layer programs against.
type ServiceInterface interface {
	Login(userID string) (string, error)
	Heartbeat(sessionID string) bool
	Logout(sessionID string)
	Validate(sessionID string) bool
	Count() int
	ListUsers() []string
}

// Service is a thin façade over the registry: each operation is exactly
// one registry call, no composite transactions.
type Service struct {
	Registry session.Registry
}

func NewService(registry session.Registry) *Service {
	return &Service{Registry: registry}
}

func (s *Service) Login(userID string) (string, error) {
	return s.Registry.Login(userID)
}

func (s *Service) Heartbeat(sessionID string) bool {
	return s.Registry.Heartbeat(sessionID)
}

func (s *Service) Logout(sessionID string) {
	s.Registry.Logout(sessionID)
}

func (s *Service) Validate(sessionID string) bool {
	return s.Registry.Validate(sessionID)
}

func (s *Service) Count() int {
	return s.Registry.Count()
}

func (s *Service) ListUsers() []string {
	return s.Registry.ListUsers()
}
