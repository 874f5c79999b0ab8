package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/erazemk/motortrade/internal/flash"
	"github.com/erazemk/motortrade/internal/model"
	"github.com/erazemk/motortrade/internal/store"
)

// BuyPage handles GET /buy/{id}.
func (s *Server) BuyPage(w http.ResponseWriter, r *http.Request) {
	motor, ok := s.motorFromPath(w, r)
	if !ok {
		return
	}

	s.Templates.Render(w, "buy.html", &struct {
		PageData
		Motor *model.Motor
	}{
		PageData: s.page(w, r, "Beli "+motor.Title),
		Motor:    motor,
	})
}

// BuySubmit handles POST /buy/{id}.
func (s *Server) BuySubmit(w http.ResponseWriter, r *http.Request) {
	motor, ok := s.motorFromPath(w, r)
	if !ok {
		return
	}

	pricePaid, err := model.ParsePricePaid(r.FormValue("price_paid"), motor.Price)
	if err != nil {
		slog.Warn("purchase rejected", "motor_id", motor.ID, "reason", err)
		s.redirectWithNotice(w, r, fmt.Sprintf("/buy/%d", motor.ID), flash.KindError, msgInvalidPayment)
		return
	}

	purchase, err := store.CreatePurchase(r.Context(), s.DB, model.Purchase{
		MotorID:     motor.ID,
		BuyerName:   strings.TrimSpace(r.FormValue("buyer")),
		Phone:       strings.TrimSpace(r.FormValue("phone")),
		Address:     strings.TrimSpace(r.FormValue("address")),
		PricePaid:   pricePaid,
		PurchasedAt: s.Now(),
	})
	if err != nil {
		slog.Error("failed to create purchase", "motor_id", motor.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("purchase recorded", "purchase_id", purchase.ID, "motor", motor.Title, "price_paid", purchase.PricePaid)
	s.redirectWithNotice(w, r, "/", flash.KindSuccess, msgPurchaseCreated)
}

// PurchasesPage handles GET /purchases.
func (s *Server) PurchasesPage(w http.ResponseWriter, r *http.Request) {
	records, err := store.ListPurchases(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list purchases", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "purchases.html", &struct {
		PageData
		Purchases []model.PurchaseRecord
	}{
		PageData:  s.page(w, r, "Riwayat Pembelian"),
		Purchases: records,
	})
}
