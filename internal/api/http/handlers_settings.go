package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"online-ordering/internal/domain"
)

// Dashboard settings surface. Saves send the entire object with the
// last-known row_version; a stale version comes back as 409.

func (h *Handler) listOrderTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.Settings.ListOrderTypes(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	if types == nil {
		types = []domain.OrderType{}
	}
	h.writeJSON(w, http.StatusOK, types)
}

func (h *Handler) getOrderType(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	ot, err := h.Settings.OrderType(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, ot)
}

func (h *Handler) updateOrderType(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var ot domain.OrderType
	if err := json.NewDecoder(r.Body).Decode(&ot); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	ot.ID = id

	updated, err := h.Settings.UpdateOrderType(r.Context(), &ot)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) getBranchPreferences(w http.ResponseWriter, r *http.Request) {
	branchID, _ := strconv.Atoi(mux.Vars(r)["branchId"])
	prefs, err := h.Settings.BranchPreferences(r.Context(), branchID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, prefs)
}

func (h *Handler) updateBranchPreferences(w http.ResponseWriter, r *http.Request) {
	branchID, _ := strconv.Atoi(mux.Vars(r)["branchId"])

	var prefs domain.BranchPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	prefs.BranchID = branchID

	updated, err := h.Settings.UpdateBranchPreferences(r.Context(), &prefs)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) getRestaurantPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.Settings.RestaurantPreferences(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, prefs)
}

func (h *Handler) updateRestaurantPreferences(w http.ResponseWriter, r *http.Request) {
	var prefs domain.RestaurantPreferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.Settings.UpdateRestaurantPreferences(r.Context(), &prefs)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, updated)
}
