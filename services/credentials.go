package services

// CredentialStore is a fixed username to password mapping checked verbatim
// at login. Passwords are stored and compared in plain text by contract;
// there is no hashing, rate limiting or lockout at this layer.
type CredentialStore struct {
	users map[string]string
}

// NewCredentialStore copies the given mapping so later mutation of the
// source cannot change login behavior.
func NewCredentialStore(users map[string]string) *CredentialStore {
	copied := make(map[string]string, len(users))
	for username, password := range users {
		copied[username] = password
	}
	return &CredentialStore{users: copied}
}

// Check reports whether username maps to exactly password. An unknown
// username yields false, never an error.
func (s *CredentialStore) Check(username, password string) bool {
	stored, ok := s.users[username]
	return ok && stored == password
}
