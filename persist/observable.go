// Package persist adds storage decorators and adapter contracts on top of
// abac.Storage: a pure-Go notifier for mutation events, grounded on
// vakt's ObservableMutationStorage, and the documented shape a
// driver-backed remote adapter (Mongo, Postgres, etcd, ...) implements.
package persist

import (
	"context"

	"github.com/abacgo/abac"
	"github.com/abacgo/abac/checker"
	"github.com/abacgo/abac/types"
)

// ChangeKind names the mutation that produced a Change.
type ChangeKind string

const (
	ChangeAdd    ChangeKind = "add"
	ChangeUpdate ChangeKind = "update"
	ChangeDelete ChangeKind = "delete"
)

// Change describes one mutation notified to ObservableStorage's
// subscribers. UID is always set; Policy is nil for a delete.
type Change struct {
	Kind   ChangeKind
	UID    string
	Policy *abac.Policy
}

// ObservableStorage wraps an abac.Storage, proxying reads unchanged and
// notifying every subscriber after a successful Add/Update/Delete. It is
// the Go analogue of vakt's storage/observable.py: mutation notification is
// layered on top of any storage without that storage knowing about it.
type ObservableStorage struct {
	storage     abac.Storage
	subscribers []chan<- Change
}

// NewObservableStorage wraps storage. Subscribers registered via Subscribe
// receive every subsequent Change.
func NewObservableStorage(storage abac.Storage) *ObservableStorage {
	return &ObservableStorage{storage: storage}
}

// Subscribe registers ch to receive future Change notifications. Sends are
// non-blocking: a subscriber whose channel is full misses the
// notification rather than stalling the mutating call.
func (o *ObservableStorage) Subscribe(ch chan<- Change) {
	o.subscribers = append(o.subscribers, ch)
}

func (o *ObservableStorage) notify(c Change) {
	for _, ch := range o.subscribers {
		select {
		case ch <- c:
		default:
		}
	}
}

func (o *ObservableStorage) Add(ctx context.Context, p *abac.Policy) error {
	if err := o.storage.Add(ctx, p); err != nil {
		return err
	}
	o.notify(Change{Kind: ChangeAdd, UID: p.UID, Policy: p})
	return nil
}

func (o *ObservableStorage) Update(ctx context.Context, p *abac.Policy) error {
	if err := o.storage.Update(ctx, p); err != nil {
		return err
	}
	o.notify(Change{Kind: ChangeUpdate, UID: p.UID, Policy: p})
	return nil
}

func (o *ObservableStorage) Delete(ctx context.Context, uid string) error {
	if err := o.storage.Delete(ctx, uid); err != nil {
		return err
	}
	o.notify(Change{Kind: ChangeDelete, UID: uid})
	return nil
}

func (o *ObservableStorage) Get(ctx context.Context, uid string) (*abac.Policy, error) {
	return o.storage.Get(ctx, uid)
}

func (o *ObservableStorage) GetAll(ctx context.Context, limit, offset int) ([]*abac.Policy, error) {
	return o.storage.GetAll(ctx, limit, offset)
}

func (o *ObservableStorage) FindForInquiry(ctx context.Context, inq types.Inquiry, c checker.Checker) ([]*abac.Policy, error) {
	return o.storage.FindForInquiry(ctx, inq, c)
}
