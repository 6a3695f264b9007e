package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/scriptmark/scriptmark/internal/bank"
)

// POST /api/exams
func UploadExamHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var e bank.Exam
		if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		if e.Title == "" {
			writeError(w, http.StatusBadRequest, "title required")
			return
		}
		if len(e.Questions) == 0 {
			writeError(w, http.StatusBadRequest, "questions required")
			return
		}
		if e.ID == "" {
			e.ID = uuid.NewString()
		}
		if err := store.PutExam(r.Context(), e); err != nil {
			writeError(w, http.StatusInternalServerError, "save exam: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "id": e.ID})
	}
}

// GET /api/exams/{examID}
//
// Serves the student-safe view only: reference answers and answer
// keys are always stripped here, whatever the query string says.
func GetExamHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "examID"))
		if id == "" {
			writeError(w, http.StatusBadRequest, "examID required")
			return
		}
		e, err := store.GetExam(r.Context(), id)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, bank.ErrExamNotFound) {
				status = http.StatusNotFound
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

// GET /api/exams/{examID}/full
//
// Teacher view with reference answers and answer keys. Mounted behind
// JWT auth only.
func GetExamFullHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "examID"))
		if id == "" {
			writeError(w, http.StatusBadRequest, "examID required")
			return
		}
		e, err := store.GetExamFull(r.Context(), id)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, bank.ErrExamNotFound) {
				status = http.StatusNotFound
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

// GET /api/exams?q=&limit=&offset=
func ListExamsHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		limit, _ := strconv.Atoi(q.Get("limit"))
		offset, _ := strconv.Atoi(q.Get("offset"))
		exams, err := store.ListExams(r.Context(), bank.ListOpts{
			Q:      q.Get("q"),
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if exams == nil {
			exams = []bank.ExamSummary{}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"exams":   exams,
			"count":   len(exams),
		})
	}
}

// DELETE /api/exams/{examID}
func DeleteExamHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "examID"))
		if id == "" {
			writeError(w, http.StatusBadRequest, "examID required")
			return
		}
		if err := store.DeleteExam(r.Context(), id); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, bank.ErrExamNotFound) {
				status = http.StatusNotFound
			}
			writeError(w, status, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
	}
}
