package main

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

var ErrStorageDisabled = errors.New("storage disabled")

type Storage struct {
	*sql.DB
}

// AnswerRow is one stored answer of one part of a run.
type AnswerRow struct {
	RunID   uuid.UUID
	Day     int
	Part    int
	Answer  Answer
	Elapsed time.Duration
	Created time.Time
}

const schema = `
CREATE SCHEMA IF NOT EXISTS aoc;
CREATE TABLE IF NOT EXISTS aoc.answer(
	run_id  uuid        NOT NULL,
	day     integer     NOT NULL,
	part    integer     NOT NULL,
	value   numeric(20) NOT NULL,
	solved  boolean     NOT NULL,
	elapsed bigint      NOT NULL,
	created timestamptz NOT NULL,
	PRIMARY KEY (run_id, day, part)
);`

func New(dataSourceName string) (*Storage, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Storage{DB: db}, nil
}

// InsertResult stores both parts of a result under run.
func (s *Storage) InsertResult(ctx context.Context, run uuid.UUID, r *Result) error {
	if s == nil {
		return ErrStorageDisabled
	}
	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	for i, p := range []PartResult{r.PartOne, r.PartTwo} {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO aoc.answer(run_id, day, part, value, solved, elapsed, created) VALUES ($1,$2,$3,$4,$5,$6,$7);",
			run.String(), r.Day, i+1, strconv.FormatUint(p.Answer.Value, 10), p.Answer.Solved, int64(p.Elapsed), now)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// QueryAnswers returns stored answers of day, newest first.
func (s *Storage) QueryAnswers(ctx context.Context, day int) ([]AnswerRow, error) {
	if s == nil {
		return nil, ErrStorageDisabled
	}
	rows, err := s.QueryContext(ctx,
		"SELECT run_id, day, part, value, solved, elapsed, created FROM aoc.answer WHERE day=$1 ORDER BY created DESC, part;", day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AnswerRow
	for rows.Next() {
		row, err := scanAnswer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *row)
	}
	return out, rows.Err()
}

// EachAnswer calls fn for every stored answer.
func (s *Storage) EachAnswer(ctx context.Context, fn func(*AnswerRow) error) error {
	if s == nil {
		return ErrStorageDisabled
	}
	rows, err := s.QueryContext(ctx,
		"SELECT run_id, day, part, value, solved, elapsed, created FROM aoc.answer ORDER BY created, day, part;")
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		row, err := scanAnswer(rows)
		if err != nil {
			return err
		}
		if err := fn(row); err != nil {
			return err
		}
	}
	return rows.Err()
}

func scanAnswer(rows *sql.Rows) (*AnswerRow, error) {
	row := &AnswerRow{}
	var run, value string
	var elapsed int64
	if err := rows.Scan(&run, &row.Day, &row.Part, &value, &row.Answer.Solved, &elapsed, &row.Created); err != nil {
		return nil, err
	}
	id, err := uuid.Parse(run)
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, err
	}
	row.RunID = id
	row.Answer.Value = v
	row.Elapsed = time.Duration(elapsed)
	return row, nil
}
