package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/motortrade/internal/model"
	"github.com/erazemk/motortrade/internal/store"
)

// MotorsHandler handles catalog endpoints.
type MotorsHandler struct {
	DB *sql.DB
}

// createMotorRequest mirrors the add form, so numbers arrive as strings and go
// through the same validation.
type createMotorRequest struct {
	Title       string `json:"title"`
	Brand       string `json:"brand"`
	Year        string `json:"year"`
	Price       string `json:"price"`
	Description string `json:"description"`
}

// List handles GET /api/motors.
func (h *MotorsHandler) List(w http.ResponseWriter, r *http.Request) {
	motors, err := store.ListMotors(r.Context(), h.DB)
	if err != nil {
		slog.Error("failed to list motors", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to list motors")
		return
	}
	if motors == nil {
		motors = []model.Motor{}
	}
	jsonResponse(w, http.StatusOK, motors)
}

// Get handles GET /api/motors/{id}.
func (h *MotorsHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	jsonResponse(w, http.StatusOK, motor)
}

// Create handles POST /api/motors.
func (h *MotorsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMotorRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in, err := model.ParseMotorForm(req.Title, req.Brand, req.Year, req.Price, req.Description)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	motor, err := store.CreateMotor(r.Context(), h.DB, in, nil, "")
	if err != nil {
		slog.Error("failed to create motor", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create motor")
		return
	}

	slog.Info("motor added", "motor_id", motor.ID, "title", motor.Title, "via", "api")
	jsonResponse(w, http.StatusCreated, motor)
}
