package service

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"online-ordering/internal/domain"
)

// SessionTTL bounds how long an anonymous session stays resumable.
const SessionTTL = 24 * time.Hour

type SessionService struct {
	store   SessionStore
	catalog CatalogRepository
	baskets BasketRepository
}

func NewSessionService(store SessionStore, catalog CatalogRepository, baskets BasketRepository) *SessionService {
	return &SessionService{store: store, catalog: catalog, baskets: baskets}
}

// dropSession removes the session and the basket it owned; a dead session's
// basket rows would otherwise sit in the database forever.
func (s *SessionService) dropSession(ctx context.Context, session *domain.Session) {
	if err := s.store.Delete(ctx, session); err != nil {
		log.Printf("[session] warning: failed to delete session %s: %v", session.ID, err)
	}
	if err := s.baskets.ClearBasket(ctx, session.ID); err != nil {
		log.Printf("[session] warning: failed to clear basket for session %s: %v", session.ID, err)
	}
}

// StartSession resumes the live session for (customerIdentifier, publicId)
// when one exists, otherwise creates a fresh one. There is never more than
// one active session per customer per public menu: a stale or mismatched
// session is dropped, its token never reused.
func (s *SessionService) StartSession(ctx context.Context, req *domain.StartSessionRequest) (*domain.Session, error) {
	branch, err := s.catalog.GetBranchByPublicID(ctx, req.PublicID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBranchNotFound
		}
		return nil, fmt.Errorf("failed to resolve public id: %w", err)
	}

	customerID := req.CustomerIdentifier
	if customerID == "" {
		customerID = randomHex(16)
	}

	if token, err := s.store.ResumeToken(ctx, customerID, req.PublicID); err == nil && token != "" {
		existing, err := s.store.GetByToken(ctx, token)
		if err == nil && existing != nil {
			if existing.PublicID == req.PublicID && time.Now().Before(existing.ExpiresAt) {
				return existing, nil
			}
			s.dropSession(ctx, existing)
		}
	}

	session := &domain.Session{
		ID:                 randomHex(12),
		Token:              randomHex(24),
		BranchID:           branch.ID,
		PublicID:           req.PublicID,
		CustomerIdentifier: customerID,
		DeviceFingerprint:  req.DeviceFingerprint,
		ExpiresAt:          time.Now().UTC().Add(SessionTTL),
	}

	if err := s.store.Save(ctx, session, SessionTTL); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return session, nil
}

// Resolve maps a bearer token to its session. Any miss is ErrSessionInvalid;
// an empty basket and a dead session are distinguished only by this check.
func (s *SessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}
	session, err := s.store.GetByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionInvalid
	}
	if !time.Now().Before(session.ExpiresAt) {
		s.dropSession(ctx, session)
		return nil, ErrSessionInvalid
	}
	return session, nil
}

func (s *SessionService) PublicID(ctx context.Context, branchID int) (string, error) {
	publicID, err := s.catalog.GetPublicID(ctx, branchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrBranchNotFound
		}
		return "", err
	}
	return publicID, nil
}

func (s *SessionService) Menu(ctx context.Context, publicID string) (*domain.Menu, error) {
	menu, err := s.catalog.GetMenu(ctx, publicID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}
	return menu, nil
}

func randomHex(n int) string {
	buf := make([]byte, n)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
