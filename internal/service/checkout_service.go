package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
	"time"

	"online-ordering/internal/domain"
)

// Loose phone check: optional leading +, then digits, spaces, dashes, parens.
var phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)

type CheckoutService struct {
	baskets    BasketRepository
	orderTypes OrderTypeRepository
	orders     OrderRepository
	prefs      PreferencesRepository
	publisher  OrderPublisher
	qr         QRGenerator
}

func NewCheckoutService(baskets BasketRepository, orderTypes OrderTypeRepository, orders OrderRepository, prefs PreferencesRepository, publisher OrderPublisher, qr QRGenerator) *CheckoutService {
	return &CheckoutService{
		baskets:    baskets,
		orderTypes: orderTypes,
		orders:     orders,
		prefs:      prefs,
		publisher:  publisher,
		qr:         qr,
	}
}

// AvailableOrderTypes lists the fulfillment modes the session's basket
// qualifies for. Table-requiring types are excluded because the online flow
// has no table context, as are inactive types and those whose minimum the
// basket total does not reach.
func (s *CheckoutService) AvailableOrderTypes(ctx context.Context, sessionID string) ([]domain.OrderType, error) {
	basket, err := s.baskets.GetBasket(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load basket: %w", err)
	}
	all, err := s.orderTypes.ListOrderTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load order types: %w", err)
	}
	return FilterOrderTypes(all, basket.TotalPrice), nil
}

func FilterOrderTypes(types []domain.OrderType, basketTotal float64) []domain.OrderType {
	filtered := make([]domain.OrderType, 0, len(types))
	for _, ot := range types {
		if !ot.IsActive || ot.RequiresTable || basketTotal < ot.MinOrderAmount {
			continue
		}
		filtered = append(filtered, ot)
	}
	return filtered
}

// ValidateCheckout checks the information step and collects every failing
// field at once rather than failing fast.
func ValidateCheckout(req *domain.CheckoutRequest, orderType *domain.OrderType, prefs *domain.BranchPreferences) map[string]string {
	fields := map[string]string{}

	if orderType == nil {
		fields["orderType"] = "an order type must be selected"
	} else {
		if orderType.RequiresName && strings.TrimSpace(req.CustomerName) == "" {
			fields["customerName"] = "name is required"
		}
		if orderType.RequiresTable && strings.TrimSpace(req.TableNumber) == "" {
			fields["tableNumber"] = "table number is required"
		}
		if orderType.RequiresAddress && strings.TrimSpace(req.DeliveryAddress) == "" {
			fields["deliveryAddress"] = "delivery address is required"
		}
		if orderType.RequiresPhone {
			phone := strings.TrimSpace(req.CustomerPhone)
			if phone == "" {
				fields["customerPhone"] = "phone number is required"
			} else if !phonePattern.MatchString(phone) {
				fields["customerPhone"] = "phone number format is invalid"
			}
		}
	}

	if prefs != nil && prefs.AcceptsAnyPayment() && strings.TrimSpace(req.PaymentMethod) == "" {
		fields["paymentMethod"] = "a payment method must be chosen"
	}
	return fields
}

// CreateOrder runs the submit step: validate, confirm any outstanding price
// changes, persist the order with only the fields the order type requires,
// clear the basket and publish the order event. Validation failures make no
// remote calls beyond the reads needed to validate.
func (s *CheckoutService) CreateOrder(ctx context.Context, session *domain.Session, req *domain.CheckoutRequest) (*domain.Order, error) {
	basket, err := s.baskets.GetBasket(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load basket: %w", err)
	}
	if basket.ItemCount == 0 {
		return nil, ErrEmptyBasket
	}

	var orderType *domain.OrderType
	if req.OrderTypeID != 0 {
		orderType, err = s.orderTypes.GetOrderType(ctx, req.OrderTypeID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to load order type: %w", err)
		}
	}

	prefs, err := s.prefs.GetBranchPreferences(ctx, session.BranchID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to load branch preferences: %w", err)
	}

	if fields := ValidateCheckout(req, orderType, prefs); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	// Outstanding price changes are confirmed before submission so the order
	// is priced off the current menu.
	if err := s.baskets.RefreshPrices(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("failed to confirm price changes: %w", err)
	}
	basket, err = s.baskets.GetBasket(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload basket: %w", err)
	}

	order := &domain.Order{
		BranchID:      session.BranchID,
		OrderTypeID:   orderType.ID,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		ServiceCharge: orderType.ServiceCharge,
		TotalAmount:   basket.TotalPrice + orderType.ServiceCharge,
		Status:        "received",
		CreatedAt:     time.Now().UTC(),
	}
	// Only the fields the selected order type requires travel with the order.
	if orderType.RequiresName {
		order.CustomerName = strings.TrimSpace(req.CustomerName)
	}
	if orderType.RequiresTable {
		order.TableNumber = strings.TrimSpace(req.TableNumber)
	}
	if orderType.RequiresAddress {
		order.DeliveryAddress = strings.TrimSpace(req.DeliveryAddress)
	}
	if orderType.RequiresPhone {
		order.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	}
	// Addon/extra rows travel with the order so the kitchen sees what each
	// line's total bought.
	for _, item := range basket.Items {
		orderItem := domain.OrderItem{
			BranchProductID: item.BranchProductID,
			ProductName:     item.ProductName,
			Quantity:        item.Quantity,
			Price:           item.Price,
			TotalPrice:      item.TotalPrice,
		}
		for _, a := range item.Addons {
			orderItem.Addons = append(orderItem.Addons, domain.OrderItemAddon{
				Name:     a.Name,
				Price:    a.Price,
				Quantity: a.Quantity,
			})
		}
		for _, e := range item.Extras {
			orderItem.Extras = append(orderItem.Extras, domain.OrderItemExtra{
				Name:      e.Name,
				Price:     e.Price,
				Quantity:  e.Quantity,
				IsRemoval: e.IsRemoval,
			})
		}
		order.Items = append(order.Items, orderItem)
	}

	if prefs != nil && prefs.WhatsappOrderingEnabled && prefs.WhatsappPhone != "" {
		order.WhatsappLink = BuildWhatsAppLink(prefs.WhatsappPhone, whatsappMessage(order))
	}

	if err := s.orders.InsertOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err := s.baskets.ClearBasket(ctx, session.ID); err != nil {
		log.Printf("[checkout] warning: failed to clear basket after order %d: %v", order.ID, err)
	}

	if s.publisher != nil {
		event := domain.OrderEvent{
			Type:        "order_created",
			OrderID:     order.ID,
			BranchID:    order.BranchID,
			OrderTypeID: order.OrderTypeID,
			TotalAmount: order.TotalAmount,
			Timestamp:   time.Now().UTC(),
		}
		if err := s.publisher.PublishOrderCreated(ctx, event); err != nil {
			log.Printf("[checkout] warning: failed to publish order event for order %d: %v", order.ID, err)
		}
	}

	if order.WhatsappLink != "" && s.qr != nil {
		if png, err := s.qr.Generate(order.WhatsappLink); err != nil {
			log.Printf("[checkout] warning: failed to generate QR code for order %d: %v", order.ID, err)
		} else if err := s.orders.StoreOrderQRCode(ctx, order.ID, png); err != nil {
			log.Printf("[checkout] warning: failed to store QR code for order %d: %v", order.ID, err)
		}
	}

	return order, nil
}

// OrderQRCode serves the stored QR image, generating it on demand when the
// order predates QR support or generation failed at submit time.
func (s *CheckoutService) OrderQRCode(ctx context.Context, orderID int) ([]byte, error) {
	png, whatsappLink, err := s.orders.GetOrderQRCode(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(png) > 0 {
		return png, nil
	}
	if whatsappLink == "" || s.qr == nil {
		return nil, ErrNotFound
	}
	png, err = s.qr.Generate(whatsappLink)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}
	if err := s.orders.StoreOrderQRCode(ctx, orderID, png); err != nil {
		log.Printf("[checkout] warning: failed to cache regenerated QR code: %v", err)
	}
	return png, nil
}

// BuildWhatsAppLink produces a wa.me deep link from a display phone number,
// keeping digits only, with the message url-encoded.
func BuildWhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), url.QueryEscape(message))
}

func whatsappMessage(order *domain.Order) string {
	var b strings.Builder
	b.WriteString("Hello! I just placed an online order.\n")
	for _, item := range order.Items {
		fmt.Fprintf(&b, "%dx %s\n", item.Quantity, item.ProductName)
		for _, a := range item.Addons {
			fmt.Fprintf(&b, "  + %dx %s\n", a.Quantity, a.Name)
		}
		for _, e := range item.Extras {
			if e.IsRemoval {
				fmt.Fprintf(&b, "  - no %s\n", e.Name)
			} else {
				fmt.Fprintf(&b, "  + %dx %s\n", e.Quantity, e.Name)
			}
		}
	}
	fmt.Fprintf(&b, "Total: %.2f", order.TotalAmount)
	return b.String()
}
