package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Dan9191/loan-dataset/internal/config"
	"github.com/Dan9191/loan-dataset/internal/dataset"
	"github.com/Dan9191/loan-dataset/internal/generator"
	"github.com/Dan9191/loan-dataset/internal/models"
	"github.com/Dan9191/loan-dataset/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// maxSamples caps on-demand generation per request
const maxSamples = 100000

type Handler struct {
	svc *service.Service
	cfg *config.Config
	log *logrus.Logger
}

func NewHandler(svc *service.Service, cfg *config.Config, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, cfg: cfg, log: log}
}

// Routes registers the dataset endpoints on r
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/datasets/{table:raw|golden}", h.Dataset).Methods("GET")
	r.HandleFunc("/summary", h.Summary).Methods("GET")
	r.HandleFunc("/default-probability", h.DefaultProbability).Methods("GET")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")
}

// Dataset streams a freshly generated raw or golden table as CSV
func (h *Handler) Dataset(w http.ResponseWriter, r *http.Request) {
	n, seed, err := h.sampleParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	snap, err := h.svc.Build(n, seed)
	if err != nil {
		h.log.Errorf("Failed to build dataset (n=%d, seed=%d): %v", n, seed, err)
		http.Error(w, "Failed to build dataset", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	if mux.Vars(r)["table"] == "golden" {
		err = dataset.WriteGolden(w, snap.Golden)
	} else {
		err = dataset.WriteRaw(w, snap.Raw)
	}
	if err != nil {
		h.log.Errorf("Failed to stream dataset: %v", err)
	}
}

// Summary returns default rates of a generated dataset as JSON
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	n, seed, err := h.sampleParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	snap, err := h.svc.Build(n, seed)
	if err != nil {
		h.log.Errorf("Failed to build dataset (n=%d, seed=%d): %v", n, seed, err)
		http.Error(w, "Failed to build dataset", http.StatusInternalServerError)
		return
	}
	writeJSON(w, snap.Summary)
}

// DefaultProbability evaluates the default model for a grade and DTI
func (h *Handler) DefaultProbability(w http.ResponseWriter, r *http.Request) {
	grade := models.Grade(r.URL.Query().Get("grade"))
	dti, err := strconv.ParseFloat(r.URL.Query().Get("dti"), 64)
	if err != nil {
		http.Error(w, "dti must be a number", http.StatusBadRequest)
		return
	}
	p, err := generator.DefaultProbability(grade, dti)
	if errors.Is(err, generator.ErrUnknownGrade) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Failed to compute probability", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{
		"grade":       grade,
		"dti":         dti,
		"probability": p,
	})
}

func (h *Handler) sampleParams(r *http.Request) (int, int64, error) {
	n, seed := h.cfg.Samples, h.cfg.Seed
	q := r.URL.Query()
	if v := q.Get("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > maxSamples {
			return 0, 0, errors.New("n must be an integer between 1 and 100000")
		}
		n = parsed
	}
	if v := q.Get("seed"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, 0, errors.New("seed must be an integer")
		}
		seed = parsed
	}
	return n, seed, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
