package abac

import (
	"context"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/abacgo/abac/checker"
	"github.com/abacgo/abac/types"
)

// Guard composes a Storage and a Checker into an allow/deny decision.
// It is stateless across calls to IsAllowed; concurrent calls
// are safe provided the storage and checker are.
type Guard struct {
	storage Storage
	checker checker.Checker
	log     logr.Logger
}

// GuardOption configures an optional Guard construction parameter.
type GuardOption func(*Guard)

// WithLogger sets the logger used for inquiry and decision tracing.
func WithLogger(l logr.Logger) GuardOption {
	return func(g *Guard) { g.log = l }
}

// NewGuard builds a Guard over storage and c. With no WithLogger option it
// falls back to stdr over stderr, the same default rbac.New uses.
func NewGuard(storage Storage, c checker.Checker, opts ...GuardOption) *Guard {
	g := &Guard{storage: storage, checker: c}
	for _, opt := range opts {
		opt(g)
	}
	if g.log.GetSink() == nil {
		g.log = stdr.New(log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile))
	}
	return g
}

// IsAllowed fetches candidates, evaluates Fits per
// candidate (a policy whose evaluation panics is logged and treated as
// "did not fit"), apply deny-overrides precedence, default deny.
func (g *Guard) IsAllowed(ctx context.Context, inq types.Inquiry) (bool, error) {
	g.log.V(4).Info("evaluating inquiry", "subject", inq.Subject, "action", inq.Action, "resource", inq.Resource)

	candidates, err := g.storage.FindForInquiry(ctx, inq, g.checker)
	if err != nil {
		return false, err
	}

	sawAllow := false
	for _, p := range candidates {
		fits, err := p.Fits(inq, g.checker)
		if err != nil {
			g.log.Error(err, "policy evaluation failed", "uid", p.UID)
			continue
		}
		if !fits {
			continue
		}
		if p.Effect == types.Deny {
			g.log.V(4).Info("decision", "allowed", false, "deny_uid", p.UID)
			return false, nil
		}
		sawAllow = true
	}

	g.log.V(4).Info("decision", "allowed", sawAllow)
	return sawAllow, nil
}
