package tests

import (
	"context"
	"testing"

	"online-ordering/internal/domain"
	"online-ordering/internal/mocks"
	"online-ordering/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFilterOrderTypes(t *testing.T) {
	types := []domain.OrderType{
		{ID: 1, Name: "Dine-in", IsActive: true, RequiresTable: true},
		{ID: 2, Name: "Pickup", IsActive: true, MinOrderAmount: 0},
		{ID: 3, Name: "Delivery", IsActive: true, MinOrderAmount: 100},
		{ID: 4, Name: "Courier", IsActive: false},
	}

	tests := []struct {
		name        string
		basketTotal float64
		expectedIDs []int
	}{
		{"below_delivery_minimum", 50, []int{2}},
		{"at_delivery_minimum", 100, []int{2, 3}},
		{"above_delivery_minimum", 150, []int{2, 3}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			filtered := service.FilterOrderTypes(types, testCase.basketTotal)
			ids := make([]int, 0, len(filtered))
			for _, ot := range filtered {
				ids = append(ids, ot.ID)
			}
			assert.Equal(t, testCase.expectedIDs, ids)
		})
	}
}

func TestValidateCheckout(t *testing.T) {
	delivery := &domain.OrderType{
		ID: 3, Name: "Delivery", IsActive: true,
		RequiresName: true, RequiresAddress: true, RequiresPhone: true,
	}
	pickup := &domain.OrderType{ID: 2, Name: "Pickup", IsActive: true, RequiresName: true}
	payingBranch := &domain.BranchPreferences{BranchID: 1, AcceptsCash: true}

	tests := []struct {
		name           string
		req            *domain.CheckoutRequest
		orderType      *domain.OrderType
		prefs          *domain.BranchPreferences
		expectedFields []string
	}{
		{
			name:           "no_order_type_selected",
			req:            &domain.CheckoutRequest{},
			expectedFields: []string{"orderType"},
		},
		{
			name:           "delivery_missing_everything",
			req:            &domain.CheckoutRequest{OrderTypeID: 3},
			orderType:      delivery,
			prefs:          payingBranch,
			expectedFields: []string{"customerName", "deliveryAddress", "customerPhone", "paymentMethod"},
		},
		{
			name: "delivery_bad_phone",
			req: &domain.CheckoutRequest{
				OrderTypeID: 3, CustomerName: "Ada", DeliveryAddress: "Main St 1",
				CustomerPhone: "call-me-maybe", PaymentMethod: "cash",
			},
			orderType:      delivery,
			prefs:          payingBranch,
			expectedFields: []string{"customerPhone"},
		},
		{
			name: "delivery_valid",
			req: &domain.CheckoutRequest{
				OrderTypeID: 3, CustomerName: "Ada", DeliveryAddress: "Main St 1",
				CustomerPhone: "+49 (30) 123-4567", PaymentMethod: "cash",
			},
			orderType: delivery,
			prefs:     payingBranch,
		},
		{
			name:      "pickup_without_payment_methods_enabled",
			req:       &domain.CheckoutRequest{OrderTypeID: 2, CustomerName: "Ada"},
			orderType: pickup,
			prefs:     &domain.BranchPreferences{BranchID: 1},
		},
		{
			name:           "whitespace_only_name",
			req:            &domain.CheckoutRequest{OrderTypeID: 2, CustomerName: "   "},
			orderType:      pickup,
			expectedFields: []string{"customerName"},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			fields := service.ValidateCheckout(testCase.req, testCase.orderType, testCase.prefs)
			assert.Len(t, fields, len(testCase.expectedFields))
			for _, field := range testCase.expectedFields {
				assert.Contains(t, fields, field)
			}
		})
	}
}

func newCheckoutService(t *testing.T) (*service.CheckoutService, *mocks.BasketRepository, *mocks.OrderTypeRepository, *mocks.OrderRepository, *mocks.PreferencesRepository, *mocks.OrderPublisher, *mocks.QRGenerator) {
	baskets := mocks.NewBasketRepository(t)
	orderTypes := mocks.NewOrderTypeRepository(t)
	orders := mocks.NewOrderRepository(t)
	prefs := mocks.NewPreferencesRepository(t)
	publisher := mocks.NewOrderPublisher(t)
	qr := mocks.NewQRGenerator(t)
	svc := service.NewCheckoutService(baskets, orderTypes, orders, prefs, publisher, qr)
	return svc, baskets, orderTypes, orders, prefs, publisher, qr
}

func TestCheckoutService_CreateOrder_Success(t *testing.T) {
	svc, baskets, orderTypes, orders, prefs, publisher, _ := newCheckoutService(t)
	ctx := context.Background()
	session := &domain.Session{ID: "sess", BranchID: 1}

	basket := &domain.Basket{
		ID:         1,
		TotalPrice: 150,
		ItemCount:  2,
		Items: []domain.BasketItem{
			{
				ID: 1, BranchProductID: 3, ProductName: "Burger", Quantity: 2, Price: 65, TotalPrice: 150,
				Addons: []domain.AddonItem{{ID: 10, AddonBranchProductID: 5, Name: "Cheese", Price: 10, Quantity: 1, MaxQuantity: 2}},
				Extras: []domain.ExtraItem{{BranchProductExtraID: 40, ExtraID: 4, Name: "Onions", Quantity: 1, IsRemoval: true}},
			},
		},
	}

	baskets.On("GetBasket", ctx, "sess").Return(basket, nil).Twice()
	orderTypes.On("GetOrderType", ctx, 3).Return(&domain.OrderType{
		ID: 3, Name: "Delivery", IsActive: true,
		RequiresName: true, RequiresAddress: true, RequiresPhone: true,
		MinOrderAmount: 100, ServiceCharge: 10,
	}, nil).Once()
	prefs.On("GetBranchPreferences", ctx, 1).
		Return(&domain.BranchPreferences{BranchID: 1, AcceptsCash: true}, nil).Once()
	baskets.On("RefreshPrices", ctx, "sess").Return(nil).Once()
	orders.On("InsertOrder", ctx, mock.Anything).Return(nil).Once()
	baskets.On("ClearBasket", ctx, "sess").Return(nil).Once()
	publisher.On("PublishOrderCreated", ctx, mock.Anything).Return(nil).Once()

	order, err := svc.CreateOrder(ctx, session, &domain.CheckoutRequest{
		OrderTypeID:     3,
		CustomerName:    "Ada",
		TableNumber:     "12",
		DeliveryAddress: "Main St 1",
		CustomerPhone:   "+49 30 1234567",
		PaymentMethod:   "cash",
	})
	assert.NoError(t, err)
	assert.Equal(t, 160.0, order.TotalAmount)
	assert.Equal(t, 10.0, order.ServiceCharge)
	assert.Equal(t, "received", order.Status)
	assert.Equal(t, "Ada", order.CustomerName)
	// Delivery does not require a table, so the table number never persists.
	assert.Empty(t, order.TableNumber)
	assert.Len(t, order.Items, 1)
	// The line's customizations travel with the order.
	assert.Equal(t, []domain.OrderItemAddon{{Name: "Cheese", Price: 10, Quantity: 1}}, order.Items[0].Addons)
	assert.Equal(t, []domain.OrderItemExtra{{Name: "Onions", Quantity: 1, IsRemoval: true}}, order.Items[0].Extras)
}

func TestCheckoutService_CreateOrder_ValidationStopsBeforeWrites(t *testing.T) {
	svc, baskets, orderTypes, _, prefs, _, _ := newCheckoutService(t)
	ctx := context.Background()
	session := &domain.Session{ID: "sess", BranchID: 1}

	baskets.On("GetBasket", ctx, "sess").
		Return(&domain.Basket{ID: 1, TotalPrice: 150, ItemCount: 1}, nil).Once()
	orderTypes.On("GetOrderType", ctx, 3).Return(&domain.OrderType{
		ID: 3, Name: "Delivery", IsActive: true, RequiresPhone: true,
	}, nil).Once()
	prefs.On("GetBranchPreferences", ctx, 1).
		Return(&domain.BranchPreferences{BranchID: 1}, nil).Once()

	_, err := svc.CreateOrder(ctx, session, &domain.CheckoutRequest{OrderTypeID: 3})

	var verr *service.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "customerPhone")
}

func TestCheckoutService_CreateOrder_EmptyBasket(t *testing.T) {
	svc, baskets, _, _, _, _, _ := newCheckoutService(t)
	ctx := context.Background()

	baskets.On("GetBasket", ctx, "sess").
		Return(&domain.Basket{ID: 1, Items: []domain.BasketItem{}}, nil).Once()

	_, err := svc.CreateOrder(ctx, &domain.Session{ID: "sess", BranchID: 1}, &domain.CheckoutRequest{OrderTypeID: 2})
	assert.ErrorIs(t, err, service.ErrEmptyBasket)
}

func TestCheckoutService_CreateOrder_WhatsAppAndQRCode(t *testing.T) {
	svc, baskets, orderTypes, orders, prefs, publisher, qr := newCheckoutService(t)
	ctx := context.Background()
	session := &domain.Session{ID: "sess", BranchID: 1}

	basket := &domain.Basket{
		ID: 1, TotalPrice: 50, ItemCount: 1,
		Items: []domain.BasketItem{{
			ID: 1, BranchProductID: 3, ProductName: "Burger", Quantity: 1, Price: 40, TotalPrice: 50,
			Addons: []domain.AddonItem{{ID: 10, Name: "Cheese", Price: 10, Quantity: 1}},
		}},
	}

	baskets.On("GetBasket", ctx, "sess").Return(basket, nil).Twice()
	orderTypes.On("GetOrderType", ctx, 2).Return(&domain.OrderType{
		ID: 2, Name: "Pickup", IsActive: true, RequiresName: true,
	}, nil).Once()
	prefs.On("GetBranchPreferences", ctx, 1).Return(&domain.BranchPreferences{
		BranchID:                1,
		AcceptsCash:             true,
		WhatsappOrderingEnabled: true,
		WhatsappPhone:           "+49 (30) 555-0101",
	}, nil).Once()
	baskets.On("RefreshPrices", ctx, "sess").Return(nil).Once()
	orders.On("InsertOrder", ctx, mock.Anything).Return(nil).Once()
	baskets.On("ClearBasket", ctx, "sess").Return(nil).Once()
	publisher.On("PublishOrderCreated", ctx, mock.Anything).Return(nil).Once()
	qr.On("Generate", mock.Anything).Return([]byte{0x89, 'P', 'N', 'G'}, nil).Once()
	orders.On("StoreOrderQRCode", ctx, 0, []byte{0x89, 'P', 'N', 'G'}).Return(nil).Once()

	order, err := svc.CreateOrder(ctx, session, &domain.CheckoutRequest{
		OrderTypeID: 2, CustomerName: "Ada", PaymentMethod: "cash",
	})
	assert.NoError(t, err)
	assert.Contains(t, order.WhatsappLink, "https://wa.me/49305550101?text=")
	// The canned message names the line's customizations, not just the product.
	assert.Contains(t, order.WhatsappLink, "Cheese")
}

func TestCheckoutService_OrderQRCode(t *testing.T) {
	svc, _, _, orders, _, _, qr := newCheckoutService(t)
	ctx := context.Background()

	t.Run("serves_stored_image", func(t *testing.T) {
		orders.On("GetOrderQRCode", ctx, 7).Return([]byte("png"), "link", nil).Once()

		png, err := svc.OrderQRCode(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("regenerates_from_stored_link", func(t *testing.T) {
		orders.On("GetOrderQRCode", ctx, 8).Return(nil, "https://wa.me/1?text=hi", nil).Once()
		qr.On("Generate", "https://wa.me/1?text=hi").Return([]byte("fresh"), nil).Once()
		orders.On("StoreOrderQRCode", ctx, 8, []byte("fresh")).Return(nil).Once()

		png, err := svc.OrderQRCode(ctx, 8)
		assert.NoError(t, err)
		assert.Equal(t, []byte("fresh"), png)
	})

	t.Run("nothing_to_serve", func(t *testing.T) {
		orders.On("GetOrderQRCode", ctx, 9).Return(nil, "", nil).Once()

		_, err := svc.OrderQRCode(ctx, 9)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestCheckoutService_AvailableOrderTypes(t *testing.T) {
	svc, baskets, orderTypes, _, _, _, _ := newCheckoutService(t)
	ctx := context.Background()

	baskets.On("GetBasket", ctx, "sess").
		Return(&domain.Basket{ID: 1, TotalPrice: 80}, nil).Once()
	orderTypes.On("ListOrderTypes", ctx).Return([]domain.OrderType{
		{ID: 1, Name: "Dine-in", IsActive: true, RequiresTable: true},
		{ID: 2, Name: "Pickup", IsActive: true},
		{ID: 3, Name: "Delivery", IsActive: true, MinOrderAmount: 100},
	}, nil).Once()

	types, err := svc.AvailableOrderTypes(ctx, "sess")
	assert.NoError(t, err)
	assert.Len(t, types, 1)
	assert.Equal(t, "Pickup", types[0].Name)
}

func TestBuildWhatsAppLink(t *testing.T) {
	link := service.BuildWhatsAppLink("+49 (30) 555-0101", "Hello & welcome")
	assert.Equal(t, "https://wa.me/49305550101?text=Hello+%26+welcome", link)
}
