// Package store holds the services the live interpreter talks to: an in-memory
// profile and order database, and a cache that can sit in front of any profile source.
package store

import (
	"context"
	"fmt"
	"slices"
	"sync/atomic"

	memdb "github.com/hashicorp/go-memdb"
	"github.com/on-the-ground/tagless_go/users"
)

const (
	profileTable = "profile"
	orderTable   = "order"
	idIndex      = "id"
	ownerIndex   = "owner"
)

type profileRecord struct {
	ID   string
	Name string
}

type orderRecord struct {
	ID    string
	Owner string
	Seq   uint64
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			profileTable: {
				Name: profileTable,
				Indexes: map[string]*memdb.IndexSchema{
					idIndex: {
						Name:    idIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
			orderTable: {
				Name: orderTable,
				Indexes: map[string]*memdb.IndexSchema{
					idIndex: {
						Name:    idIndex,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					ownerIndex: {
						Name:    ownerIndex,
						Indexer: &memdb.StringFieldIndex{Field: "Owner"},
					},
				},
			},
		},
	}
}

// MemDB keeps profiles and orders in a go-memdb database.
// It is safe for concurrent use.
type MemDB struct {
	db  *memdb.MemDB
	seq atomic.Uint64
}

func NewMemDB() (*MemDB, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("failed to create memdb: %w", err)
	}
	return &MemDB{db: db}, nil
}

// PutProfile inserts p or replaces the profile with the same UserID.
func (m *MemDB) PutProfile(p users.UserProfile) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	if err := txn.Insert(profileTable, &profileRecord{ID: string(p.UserID), Name: p.Name}); err != nil {
		return fmt.Errorf("failed to insert profile %s: %w", p.UserID, err)
	}
	txn.Commit()
	return nil
}

// PutOrder makes o the newest of its owner's orders. Re-putting an order ID moves it to the front.
func (m *MemDB) PutOrder(o users.Order) error {
	txn := m.db.Txn(true)
	defer txn.Abort()

	rec := &orderRecord{ID: string(o.ID), Owner: string(o.Owner), Seq: m.seq.Add(1)}
	if err := txn.Insert(orderTable, rec); err != nil {
		return fmt.Errorf("failed to insert order %s: %w", o.ID, err)
	}
	txn.Commit()
	return nil
}

// Profile returns users.UserNotFound for an unknown id.
func (m *MemDB) Profile(ctx context.Context, id users.UserID) (users.UserProfile, error) {
	if err := ctx.Err(); err != nil {
		return users.UserProfile{}, err
	}
	txn := m.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(profileTable, idIndex, string(id))
	if err != nil {
		return users.UserProfile{}, fmt.Errorf("failed to look up profile %s: %w", id, err)
	}
	if raw == nil {
		return users.UserProfile{}, users.UserNotFound{UserID: id}
	}
	rec := raw.(*profileRecord)
	return users.NewUserProfile(users.UserID(rec.ID), rec.Name), nil
}

// Orders returns owner's orders, most recently put first; empty when there are none.
func (m *MemDB) Orders(ctx context.Context, owner users.UserID) ([]users.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	txn := m.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(orderTable, ownerIndex, string(owner))
	if err != nil {
		return nil, fmt.Errorf("failed to list orders of %s: %w", owner, err)
	}
	var recs []*orderRecord
	for raw := it.Next(); raw != nil; raw = it.Next() {
		recs = append(recs, raw.(*orderRecord))
	}
	slices.SortFunc(recs, func(a, b *orderRecord) int {
		switch {
		case a.Seq > b.Seq:
			return -1
		case a.Seq < b.Seq:
			return 1
		}
		return 0
	})

	orders := make([]users.Order, 0, len(recs))
	for _, rec := range recs {
		orders = append(orders, users.NewOrder(users.UserID(rec.Owner), users.OrderID(rec.ID)))
	}
	return orders, nil
}
