package service

import (
	"context"
	"time"

	"online-ordering/internal/domain"
)

type SessionServiceInterface interface {
	StartSession(ctx context.Context, req *domain.StartSessionRequest) (*domain.Session, error)
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	PublicID(ctx context.Context, branchID int) (string, error)
	Menu(ctx context.Context, publicID string) (*domain.Menu, error)
}

type BasketServiceInterface interface {
	GetBasket(ctx context.Context, sessionID string) (*domain.Basket, error)
	AddUnifiedItem(ctx context.Context, sessionID string, req *domain.AddUnifiedItemRequest) (*domain.Basket, error)
	AddItemsBatch(ctx context.Context, sessionID string, req *domain.BatchAddItemsRequest) (*domain.Basket, error)
	UpdateQuantity(ctx context.Context, sessionID string, itemID, delta int) (*domain.Basket, error)
	DeleteItem(ctx context.Context, sessionID string, itemID int) (*domain.Basket, error)
	ClearBasket(ctx context.Context, sessionID string) (*domain.Basket, error)
	UpdateAddonQuantity(ctx context.Context, sessionID string, itemID, addonID, delta int) (*domain.Basket, error)
	ReplaceExtras(ctx context.Context, sessionID string, itemID int, extras []domain.ExtraSelection) (*domain.Basket, error)
	ToggleExtra(ctx context.Context, sessionID string, itemID, branchProductExtraID int) (*domain.Basket, error)
	UpdateExtraQuantity(ctx context.Context, sessionID string, itemID, branchProductExtraID, delta int) (*domain.Basket, error)
	ConfirmPriceChanges(ctx context.Context, sessionID string) (*domain.Basket, error)
}

type CheckoutServiceInterface interface {
	AvailableOrderTypes(ctx context.Context, sessionID string) ([]domain.OrderType, error)
	CreateOrder(ctx context.Context, session *domain.Session, req *domain.CheckoutRequest) (*domain.Order, error)
	OrderQRCode(ctx context.Context, orderID int) ([]byte, error)
}

type SettingsServiceInterface interface {
	ListOrderTypes(ctx context.Context) ([]domain.OrderType, error)
	OrderType(ctx context.Context, id int) (*domain.OrderType, error)
	UpdateOrderType(ctx context.Context, ot *domain.OrderType) (*domain.OrderType, error)
	BranchPreferences(ctx context.Context, branchID int) (*domain.BranchPreferences, error)
	UpdateBranchPreferences(ctx context.Context, p *domain.BranchPreferences) (*domain.BranchPreferences, error)
	RestaurantPreferences(ctx context.Context) (*domain.RestaurantPreferences, error)
	UpdateRestaurantPreferences(ctx context.Context, p *domain.RestaurantPreferences) (*domain.RestaurantPreferences, error)
}

// SessionStore persists anonymous sessions. A missing session is returned as
// (nil, nil) / ("", nil); callers decide whether that is an error.
type SessionStore interface {
	Save(ctx context.Context, s *domain.Session, ttl time.Duration) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	ResumeToken(ctx context.Context, customerIdentifier, publicID string) (string, error)
	Delete(ctx context.Context, s *domain.Session) error
}

type CatalogRepository interface {
	GetBranchByPublicID(ctx context.Context, publicID string) (*domain.Branch, error)
	GetPublicID(ctx context.Context, branchID int) (string, error)
	GetMenu(ctx context.Context, publicID string) (*domain.Menu, error)
	GetProduct(ctx context.Context, branchProductID int) (*domain.BranchProduct, error)
	GetExtra(ctx context.Context, branchProductExtraID int) (*domain.ProductExtra, error)
}

type BasketRepository interface {
	GetBasket(ctx context.Context, sessionID string) (*domain.Basket, error)
	GetItem(ctx context.Context, sessionID string, itemID int) (*domain.BasketItem, error)
	InsertItem(ctx context.Context, sessionID string, item *domain.BasketItem) error
	InsertItems(ctx context.Context, sessionID string, items []*domain.BasketItem) error
	UpdateItemQuantity(ctx context.Context, itemID, quantity int) error
	DuplicateItem(ctx context.Context, itemID, copies int) error
	DeleteItem(ctx context.Context, itemID int) error
	ClearBasket(ctx context.Context, sessionID string) error
	UpdateAddonQuantity(ctx context.Context, addonID, quantity int) error
	DeleteAddon(ctx context.Context, addonID int) error
	ReplaceExtras(ctx context.Context, itemID int, extras []domain.ExtraItem) error
	RefreshPrices(ctx context.Context, sessionID string) error
}

type OrderTypeRepository interface {
	ListOrderTypes(ctx context.Context) ([]domain.OrderType, error)
	GetOrderType(ctx context.Context, id int) (*domain.OrderType, error)
	UpdateOrderType(ctx context.Context, ot *domain.OrderType) error
}

type OrderRepository interface {
	InsertOrder(ctx context.Context, order *domain.Order) error
	GetOrderQRCode(ctx context.Context, orderID int) ([]byte, string, error)
	StoreOrderQRCode(ctx context.Context, orderID int, png []byte) error
}

type PreferencesRepository interface {
	GetBranchPreferences(ctx context.Context, branchID int) (*domain.BranchPreferences, error)
	UpdateBranchPreferences(ctx context.Context, p *domain.BranchPreferences) error
	GetRestaurantPreferences(ctx context.Context) (*domain.RestaurantPreferences, error)
	UpdateRestaurantPreferences(ctx context.Context, p *domain.RestaurantPreferences) error
}

type OrderPublisher interface {
	PublishOrderCreated(ctx context.Context, event domain.OrderEvent) error
}

type QRGenerator interface {
	Generate(data string) ([]byte, error)
}

var (
	_ SessionServiceInterface  = (*SessionService)(nil)
	_ BasketServiceInterface   = (*BasketService)(nil)
	_ CheckoutServiceInterface = (*CheckoutService)(nil)
	_ SettingsServiceInterface = (*SettingsService)(nil)
)
