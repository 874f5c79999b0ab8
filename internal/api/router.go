package api

import (
	"database/sql"
	"net/http"
	"time"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	motors := &MotorsHandler{DB: db}
	purchases := &PurchasesHandler{DB: db, Now: time.Now}

	mux.HandleFunc("GET /api/motors", motors.List)
	mux.HandleFunc("POST /api/motors", motors.Create)
	mux.HandleFunc("GET /api/motors/{id}", motors.Get)

	mux.HandleFunc("POST /api/motors/{id}/purchases", purchases.Create)
	mux.HandleFunc("GET /api/purchases", purchases.List)

	return mux
}
