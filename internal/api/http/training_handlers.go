package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/scriptmark/scriptmark/internal/training"
)

type saveExampleReq struct {
	Question         string   `json:"question"`
	StudentAnswer    string   `json:"studentAnswer"`
	ReferenceAnswers []string `json:"referenceAnswers,omitempty"`
	AIScore          float64  `json:"aiScore"`
	TeacherScore     float64  `json:"teacherScore"`
	TeacherFeedback  string   `json:"teacherFeedback,omitempty"`
}

// POST /api/save-grading-example
func SaveExampleHandler(store *training.FileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req saveExampleReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		count, err := store.Append(training.Example{
			Question:        req.Question,
			StudentAnswer:   req.StudentAnswer,
			References:      req.ReferenceAnswers,
			AIScore:         req.AIScore,
			TeacherScore:    req.TeacherScore,
			TeacherFeedback: req.TeacherFeedback,
		})
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": fmt.Sprintf("Example saved. Total examples: %d", count),
		})
	}
}

// GET /api/training-data
func GetTrainingDataHandler(store *training.FileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := store.All()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if data == nil {
			data = []training.Example{}
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    data,
			"count":   len(data),
		})
	}
}

// GET /api/grading-patterns
func GradingPatternsHandler(store *training.FileStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := store.Patterns()
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, struct {
			Success bool `json:"success"`
			training.PatternReport
		}{true, report})
	}
}
