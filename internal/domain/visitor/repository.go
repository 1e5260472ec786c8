package visitor

import (
	"context"
	"time"
)

// VisitorRepository - interface for the visitors table.
type VisitorRepository interface {
	Create(ctx context.Context, v Visitor) (Visitor, error)
	GetByID(ctx context.Context, id string) (Visitor, error)
	// ExistsInside reports whether a visitor with the mobile number is still IN.
	ExistsInside(ctx context.Context, mobile string) (bool, error)
	// MarkOut moves an IN visitor to OUT and stamps the out time; false means
	// the visitor was already out and nothing changed.
	MarkOut(ctx context.Context, id string, at time.Time) (bool, error)
	// List returns all visitors, newest first.
	List(ctx context.Context) ([]Visitor, error)
	// ListInside returns visitors currently IN, newest first.
	ListInside(ctx context.Context) ([]Visitor, error)
	// ListByDate returns visitors registered on the given calendar day.
	ListByDate(ctx context.Context, day time.Time) ([]Visitor, error)
}
