package connector

import (
	"context"
	"slices"
)

// Placeholder serves a fixed list of table names.
type Placeholder struct {
	tables []string
}

// NewPlaceholder returns a connector serving a copy of tables.
func NewPlaceholder(tables []string) *Placeholder {
	return &Placeholder{tables: slices.Clone(tables)}
}

func (p *Placeholder) Name() string { return "placeholder" }

func (p *Placeholder) Tables(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return slices.Clone(p.tables), nil
}

func (p *Placeholder) Close() error { return nil }
