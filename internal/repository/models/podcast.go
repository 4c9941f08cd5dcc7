package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a list of strings as a JSON array in a text column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	bytesToParse, err := columnBytes("StringSlice", value)
	if err != nil {
		return err
	}
	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// QuizJSON is the quiz column. A quiz that was not produced is stored as "{}".
type QuizJSON struct {
	Question      string   `json:"question,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
}

// Value implements the driver.Valuer interface
func (q QuizJSON) Value() (driver.Value, error) {
	if q.Question == "" {
		return "{}", nil
	}
	jsonData, err := json.Marshal(q)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (q *QuizJSON) Scan(value interface{}) error {
	bytesToParse, err := columnBytes("QuizJSON", value)
	if err != nil {
		return err
	}
	*q = QuizJSON{}
	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		return nil
	}
	return json.Unmarshal(bytesToParse, q)
}

func columnBytes(typeName string, value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New(typeName + " Scan: unsupported type " + fmt.Sprintf("%T", value))
	}
}

// PodcastData is a row of the podcast_data table.
type PodcastData struct {
	ID         int64          `db:"id"`
	Transcript sql.NullString `db:"transcript"`
	Summary    sql.NullString `db:"summary"`
	Takeaways  StringSlice    `db:"takeaways"`
	Quiz       QuizJSON       `db:"quiz"`
	CreatedAt  time.Time      `db:"created_at"`
}

// PodcastSummaryRow is the projection used by the read queries.
type PodcastSummaryRow struct {
	ID        int64          `db:"id"`
	Summary   sql.NullString `db:"summary"`
	Takeaways StringSlice    `db:"takeaways"`
}
