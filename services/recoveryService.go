package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/dewrapsquare/dewrap-api/models"
	"gorm.io/gorm"
)

var ErrNoRecord = errors.New("no order record in storage")

// RecoverySlot is the persistence boundary for the single in-flight
// order record each session owns.
type RecoverySlot interface {
	Set(ctx context.Context, record *models.OrderRecord) error
	Get(ctx context.Context, sessionID string) (*models.OrderRecord, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// GenerateReference mints a payment reference from a random integer in
// [1, 1e9]. The gateway treats it as opaque and rejects duplicates at
// initialize time.
func GenerateReference() string {
	return fmt.Sprintf("%d", rand.Int64N(1_000_000_000)+1)
}

type GormRecoverySlot struct {
	db *gorm.DB
}

func NewGormRecoverySlot(db *gorm.DB) *GormRecoverySlot {
	return &GormRecoverySlot{db: db}
}

// Set overwrites the session's slot unconditionally.
func (s *GormRecoverySlot) Set(ctx context.Context, record *models.OrderRecord) error {
	var existing models.OrderRecord
	err := s.db.WithContext(ctx).Where("session_id = ?", record.SessionID).First(&existing).Error
	if err == nil {
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		return s.db.WithContext(ctx).Save(record).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.WithContext(ctx).Create(record).Error
}

func (s *GormRecoverySlot) Get(ctx context.Context, sessionID string) (*models.OrderRecord, error) {
	var record models.OrderRecord
	err := s.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoRecord
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Delete hard-deletes so the session_id unique index stays reusable.
func (s *GormRecoverySlot) Delete(ctx context.Context, sessionID string) error {
	return s.db.WithContext(ctx).Unscoped().
		Where("session_id = ?", sessionID).
		Delete(&models.OrderRecord{}).Error
}

func (s *GormRecoverySlot) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.UnixMilli() - models.RecoveryTTL.Milliseconds()
	result := s.db.WithContext(ctx).Unscoped().
		Where("placed_at < ?", cutoff).
		Delete(&models.OrderRecord{})
	return result.RowsAffected, result.Error
}

// MemoryRecoverySlot keeps records in process memory. Used by tests
// and as a stand-in when no database is reachable.
type MemoryRecoverySlot struct {
	mu      sync.RWMutex
	records map[string]models.OrderRecord
}

func NewMemoryRecoverySlot() *MemoryRecoverySlot {
	return &MemoryRecoverySlot{records: make(map[string]models.OrderRecord)}
}

func (s *MemoryRecoverySlot) Set(_ context.Context, record *models.OrderRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.SessionID] = *record
	return nil
}

func (s *MemoryRecoverySlot) Get(_ context.Context, sessionID string) (*models.OrderRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[sessionID]
	if !ok {
		return nil, ErrNoRecord
	}
	return &record, nil
}

func (s *MemoryRecoverySlot) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, sessionID)
	return nil
}

func (s *MemoryRecoverySlot) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, record := range s.records {
		if record.IsExpired(now) {
			delete(s.records, id)
			removed++
		}
	}
	return removed, nil
}

// RecoveryService gates what the recovery UI may ever see.
type RecoveryService struct {
	slot RecoverySlot
}

func NewRecoveryService(slot RecoverySlot) *RecoveryService {
	return &RecoveryService{slot: slot}
}

func (s *RecoveryService) Save(ctx context.Context, record *models.OrderRecord) error {
	return s.slot.Set(ctx, record)
}

func (s *RecoveryService) Load(ctx context.Context, sessionID string) (*models.OrderRecord, error) {
	return s.slot.Get(ctx, sessionID)
}

func (s *RecoveryService) Delete(ctx context.Context, sessionID string) error {
	return s.slot.Delete(ctx, sessionID)
}

func (s *RecoveryService) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.slot.DeleteExpired(ctx, now)
}

// ReconcileOnLoad returns the session's in-flight record, or nil if
// there is nothing worth resurfacing. A completed handoff must never
// come back, and a stale attempt must never outlive its TTL, so both
// are deleted on sight.
func (s *RecoveryService) ReconcileOnLoad(ctx context.Context, sessionID string, now time.Time) (*models.OrderRecord, error) {
	record, err := s.slot.Get(ctx, sessionID)
	if errors.Is(err, ErrNoRecord) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if record.IsExpired(now) || record.Status.IsTerminal() {
		if delErr := s.slot.Delete(ctx, sessionID); delErr != nil {
			return nil, delErr
		}
		return nil, nil
	}

	return record, nil
}
