package http

import (
	"encoding/json"
	"net/http"

	"github.com/scriptmark/scriptmark/internal/grade"
	"github.com/scriptmark/scriptmark/internal/nlp"
	"github.com/scriptmark/scriptmark/internal/textproc"
)

type gradeEssayReq struct {
	StudentAnswer    string   `json:"studentAnswer"`
	ReferenceAnswers []string `json:"referenceAnswers"`
	MaxPoints        float64  `json:"maxPoints"`
	MandatoryTerms   []string `json:"mandatoryTerms,omitempty"`
	OtherAnswers     []string `json:"otherAnswers,omitempty"`
	MinWords         int      `json:"minWords,omitempty"`
	MaxWords         int      `json:"maxWords,omitempty"`
}

// POST /api/grade-essay
func GradeEssayHandler(engine *grade.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req gradeEssayReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		res, err := engine.GradeAnswer(r.Context(), grade.Request{
			Answer:         req.StudentAnswer,
			References:     req.ReferenceAnswers,
			MaxPoints:      req.MaxPoints,
			MandatoryTerms: req.MandatoryTerms,
			PeerAnswers:    req.OtherAnswers,
			MinWords:       req.MinWords,
			MaxWords:       req.MaxWords,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":    true,
			"score":      res.Score,
			"similarity": res.Similarity,
			"feedback":   res.Feedback,
		})
	}
}

type checkPlagiarismReq struct {
	StudentAnswer string   `json:"studentAnswer"`
	OtherAnswers  []string `json:"otherAnswers"`
	Threshold     float64  `json:"threshold,omitempty"`
}

// POST /api/check-plagiarism
func CheckPlagiarismHandler(holder *nlp.Holder, policy grade.Policy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkPlagiarismReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		threshold := req.Threshold
		if threshold <= 0 {
			threshold = policy.PlagiarismThreshold
		}
		provider, err := holder.Get()
		if err != nil {
			writeError(w, http.StatusInternalServerError, "embedding provider: "+err.Error())
			return
		}
		res, err := grade.DetectPlagiarism(r.Context(), provider, req.StudentAnswer, req.OtherAnswers, threshold)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		res.WebIndicators = grade.WebIndicators(req.StudentAnswer)
		writeJSON(w, http.StatusOK, struct {
			Success bool `json:"success"`
			grade.PlagiarismResult
		}{true, res})
	}
}

type analyzeTextReq struct {
	Text           string   `json:"text"`
	MandatoryTerms []string `json:"mandatoryTerms,omitempty"`
	MinWords       int      `json:"minWords,omitempty"`
	MaxWords       int      `json:"maxWords,omitempty"`
}

// POST /api/analyze-text
func AnalyzeTextHandler(policy grade.Policy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analyzeTextReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}
		minWords, maxWords := req.MinWords, req.MaxWords
		if minWords <= 0 {
			minWords = policy.MinWords
		}
		if maxWords <= 0 {
			maxWords = policy.MaxWords
		}
		grammar := grade.AnalyzeGrammarAndLength(req.Text, minWords, maxWords)
		resp := map[string]interface{}{
			"success": true,
			"grammar": grammar,
		}
		if len(req.MandatoryTerms) > 0 {
			resp["terms"] = grade.CheckMandatoryTerms(req.Text, req.MandatoryTerms)
		} else {
			resp["terms"] = nil
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type fixSpacingReq struct {
	Text  *string  `json:"text,omitempty"`
	Texts []string `json:"texts,omitempty"`
}

// POST /api/fix-spacing
func FixSpacingHandler(holder *nlp.Holder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req fixSpacingReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json: "+err.Error())
			return
		}

		var tok textproc.Tokenizer
		if provider, err := holder.Get(); err == nil && provider.HasTokenizer() {
			tok = provider
		}

		switch {
		case req.Text != nil:
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"text":    textproc.RepairSpacing(*req.Text, tok),
			})
		case req.Texts != nil:
			out := make([]string, len(req.Texts))
			for i, t := range req.Texts {
				out[i] = textproc.RepairSpacing(t, tok)
			}
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"texts":   out,
			})
		default:
			writeError(w, http.StatusBadRequest, "Provide 'text' or 'texts'")
		}
	}
}
