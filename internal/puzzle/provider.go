package puzzle

import "context"

// Provider supplies the full puzzle history.
type Provider interface {
	// All returns every known puzzle record, in no particular order.
	All(ctx context.Context) ([]Record, error)
}

// StaticProvider serves a fixed slice of records.
type StaticProvider []Record

func (p StaticProvider) All(_ context.Context) ([]Record, error) {
	out := make([]Record, len(p))
	copy(out, p)
	return out, nil
}
