package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/scriptmark/scriptmark/internal/bank"
	"github.com/scriptmark/scriptmark/internal/grade"
	"github.com/scriptmark/scriptmark/internal/storage"
)

const maxSheetUpload = 32 << 20 // 32 MiB

// POST /api/grade-ocr
//
// Multipart form:
//
//	answerSheet   image or PDF file (required)
//	questions     JSON array of questions (required unless exam_id given)
//	exam_id       grade against a stored exam instead of inline questions
//	student_id    optional, recorded on the stored report
func GradeSheetHandler(sheets *grade.SheetGrader, store bank.Store, blobs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxSheetUpload); err != nil {
			writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}
		file, hdr, err := r.FormFile("answerSheet")
		if err != nil {
			writeError(w, http.StatusBadRequest, "answerSheet file required")
			return
		}
		defer file.Close()

		questions, examID, err := sheetQuestions(r, store)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		ext := strings.ToLower(filepath.Ext(hdr.Filename))
		if ext == "" {
			ext = ".bin"
		}
		reportID := uuid.NewString()
		key, err := blobs.Put("sheets/"+reportID+ext, file)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "store upload: "+err.Error())
			return
		}
		path, err := blobs.Path(key)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "resolve upload: "+err.Error())
			return
		}

		report := sheets.GradeSheet(r.Context(), path, questions)

		if examID != "" {
			stored := bank.StoredReport{
				ID:        reportID,
				ExamID:    examID,
				StudentID: r.FormValue("student_id"),
				Report:    report,
			}
			if err := store.SaveReport(r.Context(), stored); err != nil {
				writeError(w, http.StatusInternalServerError, "save report: "+err.Error())
				return
			}
		}

		status := http.StatusOK
		if !report.Success {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, struct {
			ReportID string `json:"report_id"`
			grade.SheetReport
		}{reportID, report})
	}
}

// sheetQuestions resolves inline questions or a stored exam's.
func sheetQuestions(r *http.Request, store bank.Store) ([]grade.Question, string, error) {
	if examID := r.FormValue("exam_id"); examID != "" {
		e, err := store.GetExamFull(r.Context(), examID)
		if err != nil {
			return nil, "", err
		}
		return e.Questions, examID, nil
	}
	qjson := r.FormValue("questions")
	if qjson == "" {
		return nil, "", errors.New("questions field or exam_id required")
	}
	var questions []grade.Question
	if err := json.Unmarshal([]byte(qjson), &questions); err != nil {
		return nil, "", errors.New("invalid JSON in questions field")
	}
	if len(questions) == 0 {
		return nil, "", errors.New("questions must not be empty")
	}
	return questions, "", nil
}

// GET /api/reports/{reportID}
func GetReportHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, "reportID"))
		rep, err := store.GetReport(r.Context(), id)
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, rep)
	}
}

// GET /api/reports?exam_id=&student_id=
func ListReportsHandler(store bank.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reports, err := store.ListReports(r.Context(), bank.ReportListOpts{
			ExamID:    r.URL.Query().Get("exam_id"),
			StudentID: r.URL.Query().Get("student_id"),
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if reports == nil {
			reports = []bank.StoredReport{}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"reports": reports,
			"count":   len(reports),
		})
	}
}
