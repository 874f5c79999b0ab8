package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/erazemk/motortrade/internal/model"
	"github.com/erazemk/motortrade/internal/store"
)

// PurchasesHandler handles purchase endpoints.
type PurchasesHandler struct {
	DB  *sql.DB
	Now func() time.Time
}

type createPurchaseRequest struct {
	Buyer     string `json:"buyer"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	PricePaid string `json:"price_paid"`
}

// Create handles POST /api/motors/{id}/purchases.
func (h *PurchasesHandler) Create(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	motor, err := store.GetMotor(r.Context(), h.DB, id)
	if err != nil {
		slog.Error("failed to get motor", "motor_id", id, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to get motor")
		return
	}
	if motor == nil {
		jsonError(w, http.StatusNotFound, "motor not found")
		return
	}

	var req createPurchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pricePaid, err := model.ParsePricePaid(req.PricePaid, motor.Price)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	purchase, err := store.CreatePurchase(r.Context(), h.DB, model.Purchase{
		MotorID:     motor.ID,
		BuyerName:   strings.TrimSpace(req.Buyer),
		Phone:       strings.TrimSpace(req.Phone),
		Address:     strings.TrimSpace(req.Address),
		PricePaid:   pricePaid,
		PurchasedAt: h.Now(),
	})
	if err != nil {
		slog.Error("failed to create purchase", "motor_id", motor.ID, "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create purchase")
		return
	}

	slog.Info("purchase recorded", "purchase_id", purchase.ID, "motor", motor.Title, "via", "api")
	jsonResponse(w, http.StatusCreated, purchase)
}

// List handles GET /api/purchases.
func (h *PurchasesHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := store.ListPurchases(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list purchases", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list purchases")
		return
	}
	if records == nil {
		records = []model.PurchaseRecord{}
	}
	jsonResponse(w, http.StatusOK, records)
}
