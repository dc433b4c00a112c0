package controllers

import (
	"bytes"
	"math/rand/v2"
	"net/http"
	"time"

	"focustimer/internal/providers"
	"focustimer/internal/services"
)

type TransferController struct {
	logger   providers.Logger
	transfer services.TransferServiceInterface
	now      func() time.Time
}

func NewTransferController(logger providers.Logger, transfer services.TransferServiceInterface) *TransferController {
	return &TransferController{
		logger:   logger,
		transfer: transfer,
		now:      time.Now,
	}
}

func attachment(w http.ResponseWriter, contentType, fileName string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+fileName+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// ExportCSV renders into a buffer first so a failure still yields a clean 500.
func (tc *TransferController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := tc.transfer.ExportCSV(r.Context(), &buf); err != nil {
		tc.logger.Errorf(providers.TypeGet, "CSV export failed: %s", err)
		writeServiceError(w, err)
		return
	}
	attachment(w, "text/csv; charset=utf-8", services.CSVFileName(tc.now()), buf.Bytes())
}

func (tc *TransferController) ExportJSON(w http.ResponseWriter, r *http.Request) {
	now := tc.now()
	var buf bytes.Buffer
	if err := tc.transfer.ExportJSON(r.Context(), &buf, now); err != nil {
		tc.logger.Errorf(providers.TypeGet, "JSON export failed: %s", err)
		writeServiceError(w, err)
		return
	}
	attachment(w, "application/json", services.JSONFileName(now), buf.Bytes())
}

func (tc *TransferController) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBodySize)
	result, err := tc.transfer.ImportJSON(r.Context(), r.Body)
	if err != nil {
		tc.logger.Warnf(providers.TypePost, "Import failed after %d sessions: %s", result.Imported, err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type demoResponse struct {
	Added int `json:"added"`
}

func (tc *TransferController) Demo(w http.ResponseWriter, r *http.Request) {
	now := tc.now()
	rng := rand.New(rand.NewPCG(uint64(now.UnixNano()), 0))
	added, err := tc.transfer.LoadDemo(r.Context(), now, rng)
	if err != nil {
		tc.logger.Errorf(providers.TypePost, "Demo data failed after %d sessions: %s", added, err)
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, demoResponse{Added: added})
}
