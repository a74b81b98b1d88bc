package abac

import (
	"context"

	"github.com/abacgo/abac/checker"
	"github.com/abacgo/abac/types"
)

// Storage is the persistence contract every adapter implements. Every method
// takes a context so a remote adapter has somewhere to hang an I/O
// deadline; MemoryStorage ignores it.
type Storage interface {
	Add(ctx context.Context, p *Policy) error
	Get(ctx context.Context, uid string) (*Policy, error)
	GetAll(ctx context.Context, limit, offset int) ([]*Policy, error)
	Update(ctx context.Context, p *Policy) error
	Delete(ctx context.Context, uid string) error

	// FindForInquiry returns a candidate set that is a conservative
	// superset of the policies that truly fit inq. A storage may use c's
	// Kind to narrow the set; it is never required to.
	FindForInquiry(ctx context.Context, inq types.Inquiry, c checker.Checker) ([]*Policy, error)
}
