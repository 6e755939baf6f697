package domain

import "time"

// Session is an anonymous ordering session tied to one branch's public menu.
type Session struct {
	ID                 string    `json:"session_id"`
	Token              string    `json:"session_token"`
	BranchID           int       `json:"branch_id"`
	PublicID           string    `json:"public_id"`
	CustomerIdentifier string    `json:"customer_identifier"`
	DeviceFingerprint  string    `json:"device_fingerprint,omitempty"`
	ExpiresAt          time.Time `json:"expires_at"`
}

type Branch struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	PublicID string `json:"public_id"`
}

type BranchProduct struct {
	ID          int            `json:"id"`
	BranchID    int            `json:"branch_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Price       float64        `json:"price"`
	IsActive    bool           `json:"is_active"`
	Addons      []ProductAddon `json:"addons,omitempty"`
	Extras      []ProductExtra `json:"extras,omitempty"`
}

// ProductAddon is a purchasable sub-item attached to a parent product.
type ProductAddon struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	MaxQuantity int     `json:"max_quantity"`
}

// ProductExtra is a modifier on a product. Removal extras are binary
// toggles; additive extras carry a quantity bounded by min/max.
type ProductExtra struct {
	ID          int     `json:"branch_product_extra_id"`
	ExtraID     int     `json:"extra_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	IsRemoval   bool    `json:"is_removal"`
	MinQuantity int     `json:"min_quantity"`
	MaxQuantity int     `json:"max_quantity"`
}

type Menu struct {
	Branch   Branch          `json:"branch"`
	Products []BranchProduct `json:"products"`
}

type Basket struct {
	ID         int          `json:"basket_id"`
	Items      []BasketItem `json:"items"`
	TotalPrice float64      `json:"total_price"`
	ItemCount  int          `json:"item_count"`
}

type BasketItem struct {
	ID              int         `json:"basket_item_id"`
	BranchProductID int         `json:"branch_product_id"`
	ProductName     string      `json:"product_name"`
	Quantity        int         `json:"quantity"`
	Price           float64     `json:"price"`
	TotalPrice      float64     `json:"total_price"`
	Addons          []AddonItem `json:"addons"`
	Extras          []ExtraItem `json:"extras"`
}

// Customized reports whether the item carries any addons or extras.
// Customized lines are never merged by quantity increment; each increment
// becomes its own row so the customization set travels with it.
func (i *BasketItem) Customized() bool {
	return len(i.Addons)+len(i.Extras) > 0
}

type AddonItem struct {
	ID                   int     `json:"addon_basket_item_id"`
	AddonBranchProductID int     `json:"addon_branch_product_id"`
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	Quantity             int     `json:"quantity"`
	MaxQuantity          int     `json:"max_quantity"`
}

type ExtraItem struct {
	BranchProductExtraID int     `json:"branch_product_extra_id"`
	ExtraID              int     `json:"extra_id"`
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	Quantity             int     `json:"quantity"`
	IsRemoval            bool    `json:"is_removal"`
	MinQuantity          int     `json:"min_quantity"`
	MaxQuantity          int     `json:"max_quantity"`
}

// OrderType is a fulfillment mode. Read from the catalog and edited by the
// dashboard; never created or deleted through this service.
type OrderType struct {
	ID               int     `json:"id"`
	Name             string  `json:"name"`
	Code             string  `json:"code"`
	IsActive         bool    `json:"is_active"`
	RequiresName     bool    `json:"requires_name"`
	RequiresTable    bool    `json:"requires_table"`
	RequiresAddress  bool    `json:"requires_address"`
	RequiresPhone    bool    `json:"requires_phone"`
	MinOrderAmount   float64 `json:"min_order_amount"`
	ServiceCharge    float64 `json:"service_charge"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	RowVersion       string  `json:"row_version"`
}

type Order struct {
	ID              int         `json:"id"`
	BranchID        int         `json:"branch_id"`
	OrderTypeID     int         `json:"order_type_id"`
	CustomerName    string      `json:"customer_name,omitempty"`
	TableNumber     string      `json:"table_number,omitempty"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	CustomerPhone   string      `json:"customer_phone,omitempty"`
	PaymentMethod   string      `json:"payment_method,omitempty"`
	ServiceCharge   float64     `json:"service_charge"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	WhatsappLink    string      `json:"whatsapp_link,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `json:"items"`
}

type OrderItem struct {
	ID              int              `json:"id"`
	BranchProductID int              `json:"branch_product_id"`
	ProductName     string           `json:"product_name"`
	Quantity        int              `json:"quantity"`
	Price           float64          `json:"price"`
	TotalPrice      float64          `json:"total_price"`
	Addons          []OrderItemAddon `json:"addons,omitempty"`
	Extras          []OrderItemExtra `json:"extras,omitempty"`
}

// OrderItemAddon and OrderItemExtra snapshot the basket line's customizations
// at submission, so the kitchen sees what the line's total actually bought.
type OrderItemAddon struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type OrderItemExtra struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	IsRemoval bool    `json:"is_removal"`
}

type BranchPreferences struct {
	BranchID                int    `json:"branch_id"`
	AcceptsCash             bool   `json:"accepts_cash"`
	AcceptsCard             bool   `json:"accepts_card"`
	AcceptsOnlinePayment    bool   `json:"accepts_online_payment"`
	WhatsappOrderingEnabled bool   `json:"whatsapp_ordering_enabled"`
	WhatsappPhone           string `json:"whatsapp_phone"`
	DefaultLanguage         string `json:"default_language"`
	DefaultCurrency         string `json:"default_currency"`
	RowVersion              string `json:"row_version"`
}

// AcceptsAnyPayment reports whether at least one payment method is enabled,
// in which case checkout must carry an explicit payment method choice.
func (p *BranchPreferences) AcceptsAnyPayment() bool {
	return p.AcceptsCash || p.AcceptsCard || p.AcceptsOnlinePayment
}

type RestaurantPreferences struct {
	ID              int    `json:"id"`
	RestaurantName  string `json:"restaurant_name"`
	DefaultLanguage string `json:"default_language"`
	DefaultCurrency string `json:"default_currency"`
	TimeZone        string `json:"time_zone"`
	RowVersion      string `json:"row_version"`
}

// OrderEvent is published to Kafka when an online order is placed.
type OrderEvent struct {
	Type        string    `json:"type"`
	OrderID     int       `json:"order_id"`
	BranchID    int       `json:"branch_id"`
	OrderTypeID int       `json:"order_type_id"`
	TotalAmount float64   `json:"total_amount"`
	Timestamp   time.Time `json:"timestamp"`
}
