package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/pantry/internal/pantry/store"
)

type txStore struct {
	tx *sql.Tx
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error                 { return nil }
func (t *txStore) Ping(_ context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(_ context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }

func (t *txStore) WithTx(_ context.Context, _ func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

// Migrations run against the database before any transaction starts.
func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Users() store.Users               { return &usersRepo{db: t.tx} }
func (t *txStore) Families() store.Families         { return &familiesRepo{db: t.tx} }
func (t *txStore) Members() store.Members           { return &membersRepo{db: t.tx} }
func (t *txStore) Invitations() store.Invitations   { return &invitationsRepo{db: t.tx} }
func (t *txStore) Locations() store.Locations       { return &locationsRepo{db: t.tx} }
func (t *txStore) Stores() store.Stores             { return &storesRepo{db: t.tx} }
func (t *txStore) Aisles() store.Aisles             { return &aislesRepo{db: t.tx} }
func (t *txStore) Items() store.Items               { return &itemsRepo{db: t.tx} }
func (t *txStore) Inventory() store.Inventory       { return &inventoryRepo{db: t.tx} }
func (t *txStore) ShoppingList() store.ShoppingList { return &shoppingListRepo{db: t.tx} }
