package stream

import (
	"context"
	"fmt"
	"io"
	"strconv"
)

// Transaction streams financial operations shaped like "buy:100" or
// "sell:150". Buys add to the net flow, sells subtract.
type Transaction struct {
	id      string
	pending []string

	operations int
	netFlow    float64
}

func NewTransaction(id string, items []string) *Transaction {
	return &Transaction{id: id, pending: append([]string(nil), items...)}
}

func (s *Transaction) ID() string   { return s.id }
func (s *Transaction) Kind() string { return "transaction" }

func (s *Transaction) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.pending) == 0 {
		return "", io.EOF
	}

	item := s.pending[0]
	s.pending = s.pending[1:]

	op, value, ok := splitRecord(item)
	if !ok {
		return "", fmt.Errorf("%w: transaction %q is not op:amount", ErrMalformedRecord, item)
	}
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return "", fmt.Errorf("%w: amount %q is not numeric", ErrMalformedRecord, value)
	}

	switch op {
	case "buy":
		s.netFlow += amount
	case "sell":
		s.netFlow -= amount
	default:
		return "", fmt.Errorf("%w: unknown operation %q", ErrMalformedRecord, op)
	}

	s.operations++
	return item, nil
}

func (s *Transaction) Filter(batch []string, criteria string) []string {
	return filterByPrefix(batch, criteria)
}

func (s *Transaction) Stats() map[string]any {
	return map[string]any{
		"operations": s.operations,
		"net_flow":   s.netFlow,
	}
}
