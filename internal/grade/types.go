package grade

// Question is the minimal view of a question the grader needs.
// Stores map their own question rows onto this.
type Question struct {
	ID             string   `json:"id"`
	Prompt         string   `json:"question"`
	Type           string   `json:"type"` // multiple_choice, short_answer, essay, descriptive
	Points         float64  `json:"points"`
	References     []string `json:"reference_answers,omitempty"`
	AnswerKey      []string `json:"answer_key,omitempty"` // multiple_choice only
	MandatoryTerms []string `json:"mandatory_terms,omitempty"`
	MinWords       int      `json:"min_words,omitempty"` // 0 = policy default
	MaxWords       int      `json:"max_words,omitempty"`
}

// Request carries one answer through the single-answer grading path.
type Request struct {
	Answer         string
	References     []string
	MaxPoints      float64
	QuestionType   string
	AnswerKey      []string
	MandatoryTerms []string
	PeerAnswers    []string // other submissions, for plagiarism
	MinWords       int      // 0 = policy default
	MaxWords       int
}

// GrammarAnalysis is the rule-based length/grammar signal. Issues are
// hard failures that cost score; warnings are advisory.
type GrammarAnalysis struct {
	WordCount         int      `json:"word_count"`
	SentenceCount     int      `json:"sentence_count"`
	AvgSentenceLength float64  `json:"avg_sentence_length"`
	Issues            []string `json:"issues"`
	Warnings          []string `json:"warnings"`
	Passed            bool     `json:"passed"`
}

// TermCheck is the mandatory-term coverage signal.
type TermCheck struct {
	Found    []string `json:"found_terms"`
	Missing  []string `json:"missing_terms"`
	Coverage float64  `json:"coverage"` // 1.0 when no terms configured
}

// PeerMatch names one peer submission at or above the plagiarism
// threshold.
type PeerMatch struct {
	Index      int     `json:"index"`
	Similarity float64 `json:"similarity"`
}

// PlagiarismResult is the pairwise-similarity signal plus advisory
// lexical indicators. WebIndicators never affect the score.
type PlagiarismResult struct {
	Flagged       bool        `json:"is_plagiarized"`
	MaxSimilarity float64     `json:"max_similarity"`
	Matches       []PeerMatch `json:"similar_indices,omitempty"`
	Threshold     float64     `json:"threshold,omitempty"`
	WebIndicators []string    `json:"web_indicators,omitempty"`
}

// Result is the outcome of grading a single answer.
type Result struct {
	Score       float64  `json:"score"`
	Feedback    string   `json:"feedback"`
	Similarity  float64  `json:"similarity"`
	Adjustments []string `json:"adjustments,omitempty"`
	NeedsManual bool     `json:"needs_manual_review,omitempty"`

	Grammar *GrammarAnalysis `json:"grammar_analysis,omitempty"`
}

// QuestionResult is one question's outcome in sheet mode.
type QuestionResult struct {
	QuestionNumber  int     `json:"question_number"`
	QuestionID      string  `json:"question_id"`
	QuestionText    string  `json:"question_text"`
	ExtractedAnswer string  `json:"extracted_answer"`
	MarksAwarded    float64 `json:"marks_awarded"`
	MaxMarks        float64 `json:"max_marks"`
	Feedback        string  `json:"feedback"`
	NeedsManual     bool    `json:"needs_manual_review"`
	Confidence      float64 `json:"confidence"`
	Similarity      float64 `json:"similarity_score"`

	Grammar *GrammarAnalysis `json:"grammar_analysis,omitempty"`
}

// SheetSummary aggregates a whole graded sheet.
type SheetSummary struct {
	TotalMarks      float64 `json:"total_marks"`
	MaxTotalMarks   float64 `json:"max_total_marks"`
	Percentage      float64 `json:"percentage"`
	QuestionsGraded int     `json:"questions_graded"`
	NeedsManual     int     `json:"needs_manual_review"`
}

// SheetReport is the sheet-mode response. Success is false when the
// whole sheet was rejected (extraction failure or sub-floor OCR
// confidence); Results is empty in that case.
type SheetReport struct {
	Success       bool             `json:"success"`
	Message       string           `json:"message"`
	OCRConfidence float64          `json:"ocr_confidence,omitempty"`
	ExtractedText string           `json:"extracted_text,omitempty"`
	PageTexts     []string         `json:"page_texts,omitempty"`
	Results       []QuestionResult `json:"results"`
	Summary       *SheetSummary    `json:"summary,omitempty"`
}
