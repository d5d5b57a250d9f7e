package pantrysdk

import "time"

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}

// ============================================================================
// Signup and sessions
// ============================================================================

// SignupRequest creates an account. With InviteToken the user joins the
// inviting family and FamilyName is ignored; otherwise a new family is
// created, named FamilyName or "<local part>'s Family".
type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FamilyName  string `json:"family_name,omitempty"`
	InviteToken string `json:"invite_token,omitempty"`
}

type SignupResponse struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	FamilyID   string `json:"family_id"`
	FamilyName string `json:"family_name"`
	Role       string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	UserID      string `json:"user_id"`
}

// ============================================================================
// Family and invitations
// ============================================================================

type FamilyMember struct {
	UserID   string    `json:"user_id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

type FamilyResponse struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Role    string         `json:"role"`
	Members []FamilyMember `json:"members"`
}

type ChangeRoleRequest struct {
	Role string `json:"role"`
}

// CreateInvitationRequest invites Email. An empty FamilyID means the
// caller's family.
type CreateInvitationRequest struct {
	Email    string `json:"email"`
	FamilyID string `json:"family_id,omitempty"`
}

// InvitationResponse is returned once, at creation. Token is not stored by
// the service and cannot be retrieved again.
type InvitationResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FamilyID  string    `json:"family_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type InvitationInfo struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	InvitedBy string    `json:"invited_by"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

type ListInvitationsResponse struct {
	Invitations []InvitationInfo `json:"invitations"`
}

type InvitationPreviewResponse struct {
	Email      string    `json:"email"`
	FamilyID   string    `json:"family_id"`
	FamilyName string    `json:"family_name"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ============================================================================
// Locations, stores, aisles and items
// ============================================================================

type NameRequest struct {
	Name string `json:"name"`
}

type Location struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListLocationsResponse struct {
	Locations []Location `json:"locations"`
}

type Store struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListStoresResponse struct {
	Stores []Store `json:"stores"`
}

type Aisle struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StoreID   string    `json:"store_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListAislesResponse struct {
	Aisles []Aisle `json:"aisles"`
}

type CreateAisleRequest struct {
	Name    string `json:"name"`
	StoreID string `json:"store_id,omitempty"`
}

// UpdateAisleRequest leaves omitted fields unchanged. An empty StoreID
// detaches the aisle from its store.
type UpdateAisleRequest struct {
	Name    *string `json:"name,omitempty"`
	StoreID *string `json:"store_id,omitempty"`
}

type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	DefaultUnit string    `json:"default_unit,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	AisleID     string    `json:"aisle_id,omitempty"`
	StoreID     string    `json:"store_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListItemsResponse struct {
	Items []Item `json:"items"`
}

type CreateItemRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	DefaultUnit string `json:"default_unit,omitempty"`
	Notes       string `json:"notes,omitempty"`
	AisleID     string `json:"aisle_id,omitempty"`
	StoreID     string `json:"store_id,omitempty"`
}

// UpdateItemRequest leaves omitted fields unchanged.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	DefaultUnit *string `json:"default_unit,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	AisleID     *string `json:"aisle_id,omitempty"`
	StoreID     *string `json:"store_id,omitempty"`
}

// ============================================================================
// Inventory and shopping list
// ============================================================================

type InventoryEntry struct {
	ID           string    `json:"id"`
	LocationID   string    `json:"location_id"`
	LocationName string    `json:"location_name"`
	ItemID       string    `json:"item_id"`
	ItemName     string    `json:"item_name"`
	Quantity     float64   `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ListInventoryResponse struct {
	Inventory []InventoryEntry `json:"inventory"`
}

type CreateInventoryRequest struct {
	LocationID string  `json:"location_id"`
	ItemID     string  `json:"item_id"`
	Quantity   float64 `json:"quantity"`
}

type UpdateInventoryRequest struct {
	Quantity float64 `json:"quantity"`
}

// RestockRequest adds Amount to the stock of an item at a location.
type RestockRequest struct {
	LocationID string  `json:"location_id"`
	ItemID     string  `json:"item_id"`
	Amount     float64 `json:"amount"`
}

type ShoppingListEntry struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Quantity  float64   `json:"quantity"`
	Checked   bool      `json:"checked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListShoppingListResponse struct {
	Entries []ShoppingListEntry `json:"entries"`
}

type AddShoppingListRequest struct {
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
}

type ShoppingListCountResponse struct {
	Unchecked int `json:"unchecked"`
}

type ClearCheckedResponse struct {
	Removed int64 `json:"removed"`
}
