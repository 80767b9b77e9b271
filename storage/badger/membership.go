package badger

import (
	"context"
	"time"

	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/SriramKintada/SuperNetworkAI/storage"
	"github.com/dgraph-io/badger/v4"
)

// MembershipRepository implements storage.MembershipRepository for BadgerDB.
type MembershipRepository struct {
	backend *Backend
}

var _ storage.MembershipRepository = (*MembershipRepository)(nil)

// NewMembershipRepository creates a new MembershipRepository.
func NewMembershipRepository(backend *Backend) *MembershipRepository {
	return &MembershipRepository{backend: backend}
}

// Close is a no-op; the backend owns the database handle.
func (r *MembershipRepository) Close() error {
	return nil
}

// UpsertMemberships adds or replaces memberships keyed by
// (CommunityId, UserId). Each membership is written under its primary key
// and a user-index key in the same transaction.
func (r *MembershipRepository) UpsertMemberships(ctx context.Context, memberships ...*core.CommunityMembership) ([]*core.CommunityMembership, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		now := time.Now().UTC()
		for _, m := range memberships {
			key := makeMembershipKey(m.CommunityId, m.UserId)

			old, err := r.readMembership(tx, key)
			if err != nil {
				return err
			}
			if old != nil {
				m.InsertedAt = old.InsertedAt
			} else if m.InsertedAt.IsZero() {
				m.InsertedAt = now
			}
			m.UpdatedAt = now

			value := storage.MarshalMembership(m)
			if err := tx.Set(key, value); err != nil {
				return err
			}
			// The user index duplicates the record so prefix scans by user
			// need no second lookup.
			if err := tx.Set(makeMemberUserKey(m.UserId, m.CommunityId), value); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return memberships, err
}

// DeleteMembership removes one membership and its user-index entry.
func (r *MembershipRepository) DeleteMembership(ctx context.Context, communityId, userId core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeMembershipKey(communityId, userId)
		m, err := r.readMembership(tx, key)
		if err != nil {
			return err
		}
		if m == nil {
			return storage.ErrNotFound
		}
		if err := tx.Delete(key); err != nil {
			return err
		}
		if err := tx.Delete(makeMemberUserKey(userId, communityId)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// GetMembership retrieves one membership.
func (r *MembershipRepository) GetMembership(ctx context.Context, communityId, userId core.ID) (*core.CommunityMembership, error) {
	var result *core.CommunityMembership
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = r.readMembership(tx, makeMembershipKey(communityId, userId))
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetActiveMembershipsByUser retrieves all active memberships for a user.
func (r *MembershipRepository) GetActiveMembershipsByUser(ctx context.Context, userId core.ID) ([]*core.CommunityMembership, error) {
	var result []*core.CommunityMembership
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makePartialMemberUserKey(userId)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var m *core.CommunityMembership
			err := iter.Item().Value(func(val []byte) error {
				var err error
				m, err = storage.UnmarshalMembership(val)
				return err
			})
			if err != nil {
				return err
			}
			if m != nil && m.Active() {
				result = append(result, m)
			}
		}
		return nil
	}, false)
	return result, err
}

// readMembership reads and deserializes a membership, returning nil when absent.
func (r *MembershipRepository) readMembership(tx *badger.Txn, key []byte) (*core.CommunityMembership, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var m *core.CommunityMembership
	err = item.Value(func(val []byte) error {
		var err error
		m, err = storage.UnmarshalMembership(val)
		return err
	})
	return m, err
}
