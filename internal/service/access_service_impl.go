package service

import (
	"strings"

	"shopquote/internal/domain"
	"shopquote/internal/store"
)

// accessKey holds "true" once a valid code has been entered in this store.
const accessKey = "asqb_access_unlocked_v1"

// validCodes are the shared codes handed out to paying shops.
var validCodes = []string{"AUTO2025", "DEMO123", "CLIENTPASS"}

type accessService struct {
	store store.Store
}

// NewAccessService creates an AccessService over the given store.
func NewAccessService(s store.Store) AccessService {
	return &accessService{store: s}
}

func (s *accessService) Unlocked() bool {
	v, ok := s.store.Get(accessKey)
	return ok && v == "true"
}

func (s *accessService) Unlock(code string) error {
	code = strings.TrimSpace(code)
	for _, valid := range validCodes {
		if code == valid {
			s.store.Set(accessKey, "true")
			return nil
		}
	}
	return domain.Invalid("that code doesn't match; ask the owner for your access code")
}

func (s *accessService) Lock() {
	s.store.Remove(accessKey)
}
