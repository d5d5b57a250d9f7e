package domain

import "time"

type Location struct {
	ID        string
	FamilyID  string
	Name      string
	ItemCount int // distinct inventory rows, filled by listings only
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Store struct {
	ID        string
	FamilyID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Aisle struct {
	ID        string
	FamilyID  string
	Name      string
	StoreID   string // optional
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is the master record a family's inventory and shopping list refer to.
type Item struct {
	ID          string
	FamilyID    string
	Name        string
	Category    string
	DefaultUnit string
	Notes       string
	AisleID     string // optional
	StoreID     string // optional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type InventoryEntry struct {
	ID           string
	FamilyID     string
	LocationID   string
	ItemID       string
	Quantity     float64
	ItemName     string
	LocationName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ShoppingListEntry struct {
	ID        string
	FamilyID  string
	ItemID    string
	ItemName  string
	Quantity  float64
	Checked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
