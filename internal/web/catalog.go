package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/erazemk/motortrade/internal/flash"
	"github.com/erazemk/motortrade/internal/imaging"
	"github.com/erazemk/motortrade/internal/model"
	"github.com/erazemk/motortrade/internal/store"
)

// User-visible notices.
const (
	msgMotorNotFound   = "Motor tidak ditemukan."
	msgMissingFields   = "Nama dan harga wajib diisi."
	msgInvalidNumber   = "Format tahun atau harga tidak valid."
	msgInvalidImage    = "Format gambar tidak valid."
	msgImageTooLarge   = "Ukuran gambar terlalu besar."
	msgMotorAdded      = "Motor berhasil ditambahkan."
	msgInvalidPayment  = "Harga bayar tidak valid."
	msgPurchaseCreated = "Pembelian tercatat. Terima kasih!"
)

// Index handles GET /.
func (s *Server) Index(w http.ResponseWriter, r *http.Request) {
	motors, err := store.ListMotors(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list motors", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "index.html", &struct {
		PageData
		Motors []model.Motor
	}{
		PageData: s.page(w, r, "Daftar Motor"),
		Motors:   motors,
	})
}

// MotorDetailPage handles GET /motor/{id}.
func (s *Server) MotorDetailPage(w http.ResponseWriter, r *http.Request) {
	motor, ok := s.motorFromPath(w, r)
	if !ok {
		return
	}

	s.Templates.Render(w, "motor_detail.html", &struct {
		PageData
		Motor *model.Motor
	}{
		PageData: s.page(w, r, motor.Title),
		Motor:    motor,
	})
}

// MotorImageGet handles GET /motor/{id}/image.
func (s *Server) MotorImageGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	data, mime, err := store.GetMotorImage(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get motor image", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}

// AddPage handles GET /add.
func (s *Server) AddPage(w http.ResponseWriter, r *http.Request) {
	pd := s.page(w, r, "Tambah Motor")
	s.Templates.Render(w, "add.html", &pd)
}

// AddSubmit handles POST /add.
func (s *Server) AddSubmit(w http.ResponseWriter, r *http.Request) {
	multipartForm := strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
	if multipartForm {
		r.Body = http.MaxBytesReader(w, r.Body, s.MaxImageBytes+(1<<20))
		if err := r.ParseMultipartForm(s.MaxImageBytes); err != nil {
			slog.Warn("add motor rejected", "reason", err)
			msg := msgInvalidImage
			if errors.As(err, new(*http.MaxBytesError)) {
				msg = msgImageTooLarge
			}
			s.redirectWithNotice(w, r, "/add", flash.KindError, msg)
			return
		}
	}

	in, err := model.ParseMotorForm(
		r.FormValue("title"),
		r.FormValue("brand"),
		r.FormValue("year"),
		r.FormValue("price"),
		r.FormValue("description"),
	)
	if err != nil {
		slog.Warn("add motor rejected", "reason", err)
		msg := msgInvalidNumber
		if errors.Is(err, model.ErrMissingFields) {
			msg = msgMissingFields
		}
		s.redirectWithNotice(w, r, "/add", flash.KindError, msg)
		return
	}

	var photo *imaging.Photo
	if multipartForm {
		photo, err = s.readPhoto(r)
		if err != nil {
			slog.Warn("add motor rejected", "reason", err)
			s.redirectWithNotice(w, r, "/add", flash.KindError, msgInvalidImage)
			return
		}
	}

	var image []byte
	var mime string
	if photo != nil {
		image, mime = photo.Data, photo.MIME
	}

	motor, err := store.CreateMotor(r.Context(), s.DB, in, image, mime)
	if err != nil {
		slog.Error("failed to create motor", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("motor added", "motor_id", motor.ID, "title", motor.Title, "photo", photo != nil)
	s.redirectWithNotice(w, r, "/", flash.KindSuccess, msgMotorAdded)
}

// readPhoto returns the normalized upload in the "image" field, or nil when
// no file was chosen.
func (s *Server) readPhoto(r *http.Request) (*imaging.Photo, error) {
	file, _, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	defer file.Close()

	return imaging.Normalize(file)
}

// motorFromPath resolves the {id} path value. On failure it has already
// answered the request: 404 for a malformed id, a redirect to the catalog with
// a notice for an unknown motor.
func (s *Server) motorFromPath(w http.ResponseWriter, r *http.Request) (*model.Motor, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	motor, err := store.GetMotor(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get motor", "motor_id", id, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return nil, false
	}
	if motor == nil {
		s.redirectWithNotice(w, r, "/", flash.KindError, msgMotorNotFound)
		return nil, false
	}
	return motor, true
}
