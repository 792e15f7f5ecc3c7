package database

import (
	"fmt"
	"strconv"
	"time"
)

// Result is the outcome of one statement.
type Result struct {
	Rows     []Row
	RowCount int
}

// First returns the first row, or false when the statement matched nothing.
func (r *Result) First() (Row, bool) {
	if r == nil || len(r.Rows) == 0 {
		return nil, false
	}
	return r.Rows[0], true
}

// Row maps column name to value.
type Row map[string]any

func (r Row) lookup(col string) (any, error) {
	v, ok := r[col]
	if !ok {
		return nil, fmt.Errorf("column %q not in result", col)
	}
	return v, nil
}

func typeError(col, want string, v any) error {
	return fmt.Errorf("column %q: expected %s, got %T", col, want, v)
}

func (r Row) String(col string) (string, error) {
	v, err := r.lookup(col)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", typeError(col, "string", v)
	}
	return s, nil
}

// NullString returns nil for SQL NULL.
func (r Row) NullString(col string) (*string, error) {
	v, err := r.lookup(col)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, typeError(col, "string", v)
	}
	return &s, nil
}

func (r Row) Int64(col string) (int64, error) {
	v, err := r.lookup(col)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	}
	return 0, typeError(col, "integer", v)
}

// Float64 also accepts numeric columns, which the driver reports as text.
func (r Row) Float64(col string) (float64, error) {
	v, err := r.lookup(col)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, fmt.Errorf("column %q: %w", col, err)
		}
		return f, nil
	}
	return 0, typeError(col, "number", v)
}

func (r Row) Bool(col string) (bool, error) {
	v, err := r.lookup(col)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, typeError(col, "bool", v)
	}
	return b, nil
}

func (r Row) Time(col string) (time.Time, error) {
	v, err := r.lookup(col)
	if err != nil {
		return time.Time{}, err
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, typeError(col, "time", v)
	}
	return t, nil
}

// NullTime returns nil for SQL NULL.
func (r Row) NullTime(col string) (*time.Time, error) {
	v, err := r.lookup(col)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	t, ok := v.(time.Time)
	if !ok {
		return nil, typeError(col, "time", v)
	}
	return &t, nil
}
