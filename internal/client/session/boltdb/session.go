package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/sharebox/sharebox/internal/client/session"
)

var recordKey = []byte("current")

// Storage implements the session persistence interface
var _ session.Storage = (*Storage)(nil)

// SaveSession stores the sealed session record, replacing any previous one
func (s *Storage) SaveSession(ctx context.Context, rec *session.Record) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to marshal session record: %w", err)
		}

		if err := bucket.Put(recordKey, data); err != nil {
			return fmt.Errorf("failed to save session record: %w", err)
		}

		return nil
	})
}

// GetSession retrieves the stored session record
func (s *Storage) GetSession(ctx context.Context) (*session.Record, error) {
	var rec *session.Record

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		data := bucket.Get(recordKey)
		if data == nil {
			return session.ErrSessionNotFound
		}

		rec = &session.Record{}
		if err := json.Unmarshal(data, rec); err != nil {
			return fmt.Errorf("failed to unmarshal session record: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return rec, nil
}

// DeleteSession removes the stored session record
func (s *Storage) DeleteSession(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found")
		}

		if bucket.Get(recordKey) == nil {
			return session.ErrSessionNotFound
		}

		if err := bucket.Delete(recordKey); err != nil {
			return fmt.Errorf("failed to delete session record: %w", err)
		}

		return nil
	})
}
