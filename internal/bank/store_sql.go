package bank

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/scriptmark/scriptmark/internal/grade"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutExam(ctx context.Context, e Exam) error {
	qj, err := json.Marshal(e.Questions)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO exams (id,title,questions_json,created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, questions_json=EXCLUDED.questions_json`,
		e.ID, e.Title, string(qj), time.Now().Unix())
	return err
}

func (s *SQLStore) GetExam(ctx context.Context, id string) (Exam, error) {
	e, err := s.GetExamFull(ctx, id)
	if err != nil {
		return Exam{}, err
	}
	Sanitize(&e)
	return e, nil
}

func (s *SQLStore) GetExamFull(ctx context.Context, id string) (Exam, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,questions_json,created_at FROM exams WHERE id=$1`, id)
	var e Exam
	var qjson string
	if err := row.Scan(&e.ID, &e.Title, &qjson, &e.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Exam{}, ErrExamNotFound
		}
		return Exam{}, err
	}
	if err := json.Unmarshal([]byte(qjson), &e.Questions); err != nil {
		return Exam{}, err
	}
	return e, nil
}

func (s *SQLStore) ListExams(ctx context.Context, opts ListOpts) ([]ExamSummary, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := `SELECT id,title,questions_json,created_at FROM exams`
	args := []interface{}{}
	if opts.Q != "" {
		q += ` WHERE title LIKE $1`
		args = append(args, "%"+opts.Q+"%")
	}
	q += ` ORDER BY created_at DESC LIMIT ` + itoa(limit) + ` OFFSET ` + itoa(opts.Offset)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExamSummary
	for rows.Next() {
		var sum ExamSummary
		var qjson string
		if err := rows.Scan(&sum.ID, &sum.Title, &qjson, &sum.CreatedAt); err != nil {
			return nil, err
		}
		var qs []grade.Question
		if err := json.Unmarshal([]byte(qjson), &qs); err == nil {
			sum.QuestionCount = len(qs)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *SQLStore) DeleteExam(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM exams WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrExamNotFound
	}
	return nil
}

func (s *SQLStore) SaveReport(ctx context.Context, r StoredReport) error {
	rj, err := json.Marshal(r.Report)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO sheet_reports (id,exam_id,student_id,report_json,created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		r.ID, r.ExamID, r.StudentID, string(rj), time.Now().Unix())
	return err
}

func (s *SQLStore) GetReport(ctx context.Context, id string) (StoredReport, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,exam_id,student_id,report_json,created_at FROM sheet_reports WHERE id=$1`, id)
	var r StoredReport
	var rjson string
	if err := row.Scan(&r.ID, &r.ExamID, &r.StudentID, &rjson, &r.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return StoredReport{}, ErrReportNotFound
		}
		return StoredReport{}, err
	}
	if err := json.Unmarshal([]byte(rjson), &r.Report); err != nil {
		return StoredReport{}, err
	}
	return r, nil
}

func (s *SQLStore) ListReports(ctx context.Context, opts ReportListOpts) ([]StoredReport, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := `SELECT id,exam_id,student_id,report_json,created_at FROM sheet_reports`
	args := []interface{}{}
	where := ""
	if opts.ExamID != "" {
		where = ` WHERE exam_id=$1`
		args = append(args, opts.ExamID)
	}
	if opts.StudentID != "" {
		if where == "" {
			where = ` WHERE student_id=$1`
		} else {
			where += ` AND student_id=$2`
		}
		args = append(args, opts.StudentID)
	}
	q += where + ` ORDER BY created_at DESC LIMIT ` + itoa(limit) + ` OFFSET ` + itoa(opts.Offset)

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StoredReport
	for rows.Next() {
		var r StoredReport
		var rjson string
		if err := rows.Scan(&r.ID, &r.ExamID, &r.StudentID, &rjson, &r.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(rjson), &r.Report); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func itoa(n int) string {
	if n < 0 {
		n = 0
	}
	return strconv.Itoa(n)
}
