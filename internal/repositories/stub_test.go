package repositories

import (
	"context"
	"fmt"

	"biztime/internal/database"
)

type call struct {
	query string
	args  []any
}

type response struct {
	res *database.Result
	err error
}

// stubDB replays scripted responses in order and records every statement.
type stubDB struct {
	calls      []call
	responses  []response
	txStarted  int
	txFinished int
	txErr      error
}

func (s *stubDB) reply(rows ...database.Row) *stubDB {
	if rows == nil {
		rows = []database.Row{}
	}
	s.responses = append(s.responses, response{res: &database.Result{Rows: rows, RowCount: len(rows)}})
	return s
}

func (s *stubDB) fail(err error) *stubDB {
	s.responses = append(s.responses, response{err: err})
	return s
}

func (s *stubDB) Query(ctx context.Context, query string, args ...any) (*database.Result, error) {
	s.calls = append(s.calls, call{query: query, args: args})
	if len(s.responses) == 0 {
		return nil, fmt.Errorf("unexpected query %q", query)
	}
	r := s.responses[0]
	s.responses = s.responses[1:]
	return r.res, r.err
}

func (s *stubDB) WithTx(ctx context.Context, fn func(q database.Querier) error) error {
	s.txStarted++
	err := fn(s)
	s.txFinished++
	s.txErr = err
	return err
}
