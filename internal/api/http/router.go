package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// Paths below match what the dashboard and online menu UI already call.
	r.HandleFunc("/api/Branches/Anonymus/GetPublicId", h.getPublicID).Methods("GET")

	r.HandleFunc("/api/online/menu/{publicId}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/online/start-session", h.startSession).Methods("POST")

	r.HandleFunc("/api/online/my-basket", h.getBasket).Methods("GET")
	r.HandleFunc("/api/online/my-basket", h.clearBasket).Methods("DELETE")
	r.HandleFunc("/api/online/my-basket/unified-items", h.addUnifiedItem).Methods("POST")
	r.HandleFunc("/api/online/my-basket/items/batch", h.addItemsBatch).Methods("POST")
	r.HandleFunc("/api/online/my-basket/items/{id}", h.updateBasketItem).Methods("PUT")
	r.HandleFunc("/api/online/my-basket/items/{id}", h.deleteBasketItem).Methods("DELETE")
	r.HandleFunc("/api/online/my-basket/items/{id}/addons/{addonId}", h.updateAddon).Methods("PUT")
	r.HandleFunc("/api/online/my-basket/confirm-price-changes", h.confirmPriceChanges).Methods("POST")

	r.HandleFunc("/api/online/order-types", h.availableOrderTypes).Methods("GET")
	r.HandleFunc("/api/online/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/online/orders/{id}/qrcode", h.orderQRCode).Methods("GET")

	r.HandleFunc("/api/OrderTypes", h.listOrderTypes).Methods("GET")
	r.HandleFunc("/api/OrderTypes/{id}", h.getOrderType).Methods("GET")
	r.HandleFunc("/api/OrderTypes/{id}", h.updateOrderType).Methods("PUT")
	r.HandleFunc("/api/BranchPreferences/{branchId}", h.getBranchPreferences).Methods("GET")
	r.HandleFunc("/api/BranchPreferences/{branchId}", h.updateBranchPreferences).Methods("PUT")
	r.HandleFunc("/api/RestaurantPreferences", h.getRestaurantPreferences).Methods("GET")
	r.HandleFunc("/api/RestaurantPreferences", h.updateRestaurantPreferences).Methods("PUT")
}

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return cors.Default().Handler(r)
}
