package persist

import (
	"context"

	"github.com/abacgo/abac"
)

// RemoteStorage is the contract a driver-backed adapter implements: every
// abac.Storage operation plus a Watch stream of external mutations, the
// same shape a mgo-backed change-stream persister exposes. Concrete remote
// backends are out of scope here; this interface is the documented seam a
// Mongo, Postgres, or etcd adapter would implement outside this module. No
// driver is imported here.
type RemoteStorage interface {
	abac.Storage

	// Watch streams mutations made to the backing store by any process,
	// not just through this RemoteStorage instance, the way a database
	// change-stream or WAL tail would. The returned channel is closed
	// when ctx is done or the underlying feed ends.
	Watch(ctx context.Context) (<-chan Change, error)
}
