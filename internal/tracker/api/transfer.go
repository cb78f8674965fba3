package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/2beens/practicetracker/internal/telemetry/tracing"
	"github.com/2beens/practicetracker/internal/tracker/program"
	"github.com/2beens/practicetracker/internal/tracker/transfer"
	"github.com/2beens/practicetracker/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) HandleExportProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.transfer.export")
	defer span.End()

	doc, err := h.transfer.Export(ctx, mux.Vars(r)["id"])
	if err != nil {
		writeError(w, "export program", err)
		return
	}
	w.Header().Set("Content-Disposition", attachmentHeader(transfer.FileName(doc.Program.Name)))
	writeOK(w, doc)
}

func (h *Handler) HandleImportProgram(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.transfer.import")
	defer span.End()

	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		log.Errorf("import program, read body: %s", err)
		http.Error(w, "import failed", http.StatusBadRequest)
		return
	}
	if len(data) > maxBodyBytes {
		http.Error(w, "import file too large", http.StatusRequestEntityTooLarge)
		return
	}

	res, err := h.transfer.Import(ctx, data)
	if err != nil {
		if errors.Is(err, program.ErrValidation) && res != nil {
			pkg.WriteJSON(w, http.StatusBadRequest, res)
			return
		}
		writeError(w, "import program", err)
		return
	}
	h.countProgram("imported")
	writeCreated(w, res)
}
