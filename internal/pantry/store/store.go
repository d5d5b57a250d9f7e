package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/pantry/internal/pantry/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	ErrReferenced    = errors.New("store: referenced row missing or still in use")
)

// Store is the root data access interface. Sub-repositories are reached
// through methods so a Tx can hand out the same repos bound to the
// transaction.
type Store interface {
	Users() Users
	Families() Families
	Members() Members
	Invitations() Invitations
	Locations() Locations
	Stores() Stores
	Aisles() Aisles
	Items() Items
	Inventory() Inventory
	ShoppingList() ShoppingList

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller must Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise. Nested calls return sql.ErrTxDone.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	CreateUser(ctx context.Context, u domain.User) error
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail matches the email exactly.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Families interface {
	CreateFamily(ctx context.Context, f domain.Family) error
	GetFamilyByID(ctx context.Context, id string) (domain.Family, error)
}

type Members interface {
	// CreateMember fails with ErrAlreadyExists when the user already has a
	// membership.
	CreateMember(ctx context.Context, m domain.Member) error
	GetMemberByUserID(ctx context.Context, userID string) (domain.Member, error)
	GetMember(ctx context.Context, familyID, userID string) (domain.Member, error)
	ListFamilyMembers(ctx context.Context, familyID string) ([]domain.MemberView, error)
	CountAdmins(ctx context.Context, familyID string) (int, error)
	UpdateMemberRole(ctx context.Context, familyID, userID string, role domain.Role) error
}

type Invitations interface {
	CreateInvitation(ctx context.Context, inv domain.Invitation) error
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// MarkInvitationAccepted only transitions pending rows. ErrNotFound is
	// returned when the invitation is missing or was already accepted.
	MarkInvitationAccepted(ctx context.Context, id, userID string) error

	ListPendingInvitations(ctx context.Context, familyID string, now time.Time) ([]domain.Invitation, error)

	// DeleteExpiredInvitations removes pending rows past their expiry.
	DeleteExpiredInvitations(ctx context.Context, now time.Time) (int64, error)
}

// Every tenant scoped repository takes the family id as an explicit filter.
// Rows of another family behave exactly like missing rows.

type Locations interface {
	ListLocations(ctx context.Context, familyID string) ([]domain.Location, error)
	GetLocation(ctx context.Context, familyID, id string) (domain.Location, error)
	CreateLocation(ctx context.Context, l domain.Location) error
	RenameLocation(ctx context.Context, familyID, id, name string) error
	DeleteLocation(ctx context.Context, familyID, id string) error
	CountLocationInventory(ctx context.Context, familyID, id string) (int, error)
}

type Stores interface {
	ListStores(ctx context.Context, familyID string) ([]domain.Store, error)
	GetStore(ctx context.Context, familyID, id string) (domain.Store, error)
	CreateStore(ctx context.Context, s domain.Store) error
	RenameStore(ctx context.Context, familyID, id, name string) error
	DeleteStore(ctx context.Context, familyID, id string) error

	// CountStoreReferences returns how many items and aisles point at the store.
	CountStoreReferences(ctx context.Context, familyID, id string) (items, aisles int, err error)
}

type Aisles interface {
	ListAisles(ctx context.Context, familyID string) ([]domain.Aisle, error)
	GetAisle(ctx context.Context, familyID, id string) (domain.Aisle, error)
	CreateAisle(ctx context.Context, a domain.Aisle) error
	UpdateAisle(ctx context.Context, a domain.Aisle) error

	// DeleteAisle clears aisle_id on items that referenced it.
	DeleteAisle(ctx context.Context, familyID, id string) error
}

type Items interface {
	ListItems(ctx context.Context, familyID string) ([]domain.Item, error)
	GetItem(ctx context.Context, familyID, id string) (domain.Item, error)
	CreateItem(ctx context.Context, it domain.Item) error
	UpdateItem(ctx context.Context, it domain.Item) error

	// DeleteItem cascades to inventory and shopping list rows.
	DeleteItem(ctx context.Context, familyID, id string) error
}

type Inventory interface {
	// ListInventory orders by creation. An empty locationID lists all
	// locations.
	ListInventory(ctx context.Context, familyID, locationID string) ([]domain.InventoryEntry, error)
	GetInventory(ctx context.Context, familyID, id string) (domain.InventoryEntry, error)
	GetInventoryByLocationItem(ctx context.Context, familyID, locationID, itemID string) (domain.InventoryEntry, error)
	CreateInventory(ctx context.Context, e domain.InventoryEntry) error
	UpdateInventoryQuantity(ctx context.Context, familyID, id string, quantity float64) error
	DeleteInventory(ctx context.Context, familyID, id string) error
}

type ShoppingList interface {
	ListShoppingList(ctx context.Context, familyID string) ([]domain.ShoppingListEntry, error)
	GetShoppingListEntry(ctx context.Context, familyID, id string) (domain.ShoppingListEntry, error)
	GetShoppingListEntryByItem(ctx context.Context, familyID, itemID string) (domain.ShoppingListEntry, error)
	CreateShoppingListEntry(ctx context.Context, e domain.ShoppingListEntry) error
	SetShoppingListChecked(ctx context.Context, familyID, id string, checked bool) error
	DeleteShoppingListEntry(ctx context.Context, familyID, id string) error
	CountUnchecked(ctx context.Context, familyID string) (int, error)
	DeleteCheckedShoppingList(ctx context.Context, familyID string) (int64, error)
}
