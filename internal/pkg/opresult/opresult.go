// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package opresult models provider call outcomes as a small tagged-result
// type, per the design note in spec §9: "Exception-driven error flow ->
// tagged-result values." Every provider call the Doer makes, and the
// Doer's overall per-message step, returns one of these instead of relying
// on exception-style control flow to separate transient from permanent
// failure.
package opresult

// Kind classifies a provider call outcome.
type Kind int

const (
	// Ok means the operation was invoked and the provider accepted it.
	Ok Kind = iota
	// Benign means the provider reported the resource is already in the
	// desired state, or an equivalent idempotent no-op. Acknowledge, log
	// at INFO.
	Benign
	// Transient means a retryable provider error (throttling, 5xx,
	// timeout). NACK and let the queue redeliver.
	Transient
	// Permanent means an unrecoverable error (authorization, validation).
	// NACK straight to the dead-letter channel.
	Permanent
)

func (k Kind) String() string {
	switch k {
	case Ok:
		return "ok"
	case Benign:
		return "benign"
	case Transient:
		return "transient"
	case Permanent:
		return "permanent"
	default:
		return "unknown"
	}
}

// Result is the outcome of one provider call.
type Result struct {
	Kind Kind
	// Err is the underlying error, nil when Kind is Ok.
	Err error
}

func (r Result) Error() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// OK builds a successful result.
func OK() Result { return Result{Kind: Ok} }

// Wrap classifies a raw provider error using the supplied classifier and
// wraps it in a Result. A nil err always yields OK().
func Wrap(err error, classify func(error) Kind) Result {
	if err == nil {
		return OK()
	}
	return Result{Kind: classify(err), Err: err}
}

// ShouldAcknowledge reports whether the Doer should ack (remove) the
// message from the main queue: true for Ok and Benign, false otherwise.
func (r Result) ShouldAcknowledge() bool {
	return r.Kind == Ok || r.Kind == Benign
}

// ShouldDeadLetter reports whether the message should be routed straight
// to the dead-letter channel rather than left for redelivery.
func (r Result) ShouldDeadLetter() bool {
	return r.Kind == Permanent
}
