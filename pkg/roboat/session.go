package roboat

import (
	"sync"

	internalTypes "github.com/eshaffer321/roboat-go/internal/types"
)

// session is the per-client authentication state. The anti-forgery token
// and the identity cache have independent locks; neither is held while
// the other is taken or across a network call.
type session struct {
	// immutable after construction
	credential string

	tokenMu sync.Mutex
	token   string

	identityMu sync.Mutex
	identity   *Identity
}

func newSession(credential string) *session {
	return &session{credential: credential}
}

// cookie returns the Cookie header value carrying the credential
func (s *session) cookie() (string, error) {
	if s.credential == "" {
		return "", ErrCredentialNotSet
	}
	return internalTypes.CredentialCookie + "=" + s.credential, nil
}

func (s *session) csrfToken() string {
	s.tokenMu.Lock()
	defer s.tokenMu.Unlock()
	return s.token
}

// setCSRFToken overwrites the token. Last writer wins.
func (s *session) setCSRFToken(token string) {
	s.tokenMu.Lock()
	s.token = token
	s.tokenMu.Unlock()
}

// cachedIdentity returns a copy of the cached identity
func (s *session) cachedIdentity() (Identity, bool) {
	s.identityMu.Lock()
	defer s.identityMu.Unlock()
	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

func (s *session) storeIdentity(identity Identity) {
	s.identityMu.Lock()
	s.identity = &identity
	s.identityMu.Unlock()
}
