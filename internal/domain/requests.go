package domain

type StartSessionRequest struct {
	PublicID           string `json:"public_id"`
	CustomerIdentifier string `json:"customer_identifier"`
	DeviceFingerprint  string `json:"device_fingerprint"`
}

type AddonSelection struct {
	AddonBranchProductID int `json:"addon_branch_product_id"`
	Quantity             int `json:"quantity"`
}

type ExtraSelection struct {
	BranchProductExtraID int `json:"branch_product_extra_id"`
	Quantity             int `json:"quantity"`
}

// AddUnifiedItemRequest adds a product together with its addon and extra
// selections as a single basket line.
type AddUnifiedItemRequest struct {
	BranchProductID int              `json:"branch_product_id"`
	Quantity        int              `json:"quantity"`
	Addons          []AddonSelection `json:"addons,omitempty"`
	Extras          []ExtraSelection `json:"extras,omitempty"`
}

type BatchAddItemsRequest struct {
	Items []AddUnifiedItemRequest `json:"items"`
}

// UpdateBasketItemRequest mutates one basket line. Exactly one of the
// operation fields is honored: quantity_delta, extras (full replacement of
// the extras set), toggle_extra_id, or extra_id + extra_delta.
type UpdateBasketItemRequest struct {
	QuantityDelta *int             `json:"quantity_delta,omitempty"`
	Extras        []ExtraSelection `json:"extras,omitempty"`
	ToggleExtraID *int             `json:"toggle_extra_id,omitempty"`
	ExtraID       *int             `json:"extra_id,omitempty"`
	ExtraDelta    *int             `json:"extra_delta,omitempty"`
}

type UpdateAddonRequest struct {
	QuantityDelta int `json:"quantity_delta"`
}

// CheckoutRequest carries the information step of checkout. Fields that the
// selected order type does not require are left empty and never persisted.
type CheckoutRequest struct {
	OrderTypeID     int    `json:"order_type_id"`
	CustomerName    string `json:"customer_name"`
	TableNumber     string `json:"table_number"`
	DeliveryAddress string `json:"delivery_address"`
	CustomerPhone   string `json:"customer_phone"`
	PaymentMethod   string `json:"payment_method"`
}
