package types

import "errors"

// Sentinel errors shared across the engine's packages. Call sites wrap
// these with fmt.Errorf("...: %w", Err...) to add detail, the same way
// rbac.go wrapped its own init errors.
var (
	// ErrInvalidArgument flags bad constructor input: mixed policy dialect,
	// negative pagination, an empty/unknown effect, a malformed regex or
	// CIDR literal.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrExists is returned by Storage.Add when a uid is already present.
	ErrExists = errors.New("policy already exists")

	// ErrNotFound is returned by Storage.Get (and, per adapter, Update or
	// Delete) when a uid is missing.
	ErrNotFound = errors.New("not found")

	// ErrUnknownDiscriminator is returned when decoding a rule whose "rule"
	// discriminator isn't registered.
	ErrUnknownDiscriminator = errors.New("unknown rule discriminator")

	// ErrStorage wraps an adapter's underlying I/O failure.
	ErrStorage = errors.New("storage error")

	// ErrPolicyEvaluation marks a runtime failure inside a rule or checker
	// during Guard.IsAllowed. The guard catches it, logs it, and treats the
	// offending policy as "did not fit"; it must never propagate past the
	// guard as a decision failure.
	ErrPolicyEvaluation = errors.New("policy evaluation failed")
)
