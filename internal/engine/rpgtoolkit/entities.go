package rpgtoolkit

// SessionEntityType is the rpg-toolkit entity type of a simulation session
const SessionEntityType = "simulation_session"

// SessionEntity identifies a simulation session to rpg-toolkit events
type SessionEntity struct {
	ID string
}

// GetID returns the session's ID
func (s *SessionEntity) GetID() string {
	return s.ID
}

// GetType returns the entity type for rpg-toolkit
func (s *SessionEntity) GetType() string {
	return SessionEntityType
}

// WrapSession returns the entity for a session ID
func WrapSession(id string) *SessionEntity {
	return &SessionEntity{ID: id}
}
