package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"online-ordering/internal/domain"
	"online-ordering/internal/service"
)

// SessionTokenHeader carries the anonymous session token on every basket and
// checkout request.
const SessionTokenHeader = "X-Session-Token"

type Handler struct {
	Sessions service.SessionServiceInterface
	Baskets  service.BasketServiceInterface
	Checkout service.CheckoutServiceInterface
	Settings service.SettingsServiceInterface
}

func NewHandler(sessions service.SessionServiceInterface, baskets service.BasketServiceInterface, checkout service.CheckoutServiceInterface, settings service.SettingsServiceInterface) *Handler {
	return &Handler{
		Sessions: sessions,
		Baskets:  baskets,
		Checkout: checkout,
		Settings: settings,
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "online-ordering",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) getPublicID(w http.ResponseWriter, r *http.Request) {
	branchID, err := strconv.Atoi(r.URL.Query().Get("branchId"))
	if err != nil || branchID <= 0 {
		http.Error(w, "branchId query parameter is required", http.StatusBadRequest)
		return
	}
	publicID, err := h.Sessions.PublicID(r.Context(), branchID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"public_id": publicID})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := h.Sessions.Menu(r.Context(), mux.Vars(r)["publicId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, menu)
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request) {
	var req domain.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.PublicID == "" {
		http.Error(w, "public_id is required", http.StatusBadRequest)
		return
	}
	session, err := h.Sessions.StartSession(r.Context(), &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, session)
}

func (h *Handler) getBasket(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	basket, err := h.Baskets.GetBasket(r.Context(), session.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, basket)
}

func (h *Handler) clearBasket(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	basket, err := h.Baskets.ClearBasket(r.Context(), session.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, basket)
}

func (h *Handler) addUnifiedItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	var req domain.AddUnifiedItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	basket, err := h.Baskets.AddUnifiedItem(r.Context(), session.ID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, basket)
}

func (h *Handler) addItemsBatch(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	var req domain.BatchAddItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	basket, err := h.Baskets.AddItemsBatch(r.Context(), session.ID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, basket)
}

func (h *Handler) updateBasketItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	itemID, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req domain.UpdateBasketItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	var basket *domain.Basket
	var err error
	switch {
	case req.QuantityDelta != nil:
		basket, err = h.Baskets.UpdateQuantity(r.Context(), session.ID, itemID, *req.QuantityDelta)
	case req.ToggleExtraID != nil:
		basket, err = h.Baskets.ToggleExtra(r.Context(), session.ID, itemID, *req.ToggleExtraID)
	case req.ExtraID != nil && req.ExtraDelta != nil:
		basket, err = h.Baskets.UpdateExtraQuantity(r.Context(), session.ID, itemID, *req.ExtraID, *req.ExtraDelta)
	case req.Extras != nil:
		basket, err = h.Baskets.ReplaceExtras(r.Context(), session.ID, itemID, req.Extras)
	default:
		http.Error(w, "no basket item operation in request body", http.StatusBadRequest)
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, basket)
}

func (h *Handler) deleteBasketItem(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	itemID, _ := strconv.Atoi(mux.Vars(r)["id"])
	basket, err := h.Baskets.DeleteItem(r.Context(), session.ID, itemID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, basket)
}

func (h *Handler) updateAddon(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	itemID, _ := strconv.Atoi(vars["id"])
	addonID, _ := strconv.Atoi(vars["addonId"])

	var req domain.UpdateAddonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	basket, err := h.Baskets.UpdateAddonQuantity(r.Context(), session.ID, itemID, addonID, req.QuantityDelta)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, basket)
}

func (h *Handler) confirmPriceChanges(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	basket, err := h.Baskets.ConfirmPriceChanges(r.Context(), session.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, basket)
}

func (h *Handler) availableOrderTypes(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	types, err := h.Checkout.AvailableOrderTypes(r.Context(), session.ID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, types)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	order, err := h.Checkout.CreateOrder(r.Context(), session, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	png, err := h.Checkout.OrderQRCode(r.Context(), orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// session resolves the request's token, writing a 401 on any miss so callers
// can re-initialize their session.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*domain.Session, bool) {
	session, err := h.Sessions.Resolve(r.Context(), r.Header.Get(SessionTokenHeader))
	if err != nil {
		h.writeError(w, err)
		return nil, false
	}
	return session, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		h.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrSessionInvalid):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrBranchNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrVersionConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrQuantityBounds),
		errors.Is(err, service.ErrRemovalExtra),
		errors.Is(err, service.ErrEmptyBasket):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
