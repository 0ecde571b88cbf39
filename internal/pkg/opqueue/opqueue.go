// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package opqueue is the operation request message contract linking the
// Finder to the Doer (spec §3, §6): the message shape, its JSON wire
// encoding, and the size cap enforced before send.
package opqueue

import (
	"encoding/json"
	"fmt"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/cycle"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/restag"
)

// DefaultMaxBytes is the default per-message size cap.
const DefaultMaxBytes = 32 * 1024

// MaxBytesCeiling is the absolute maximum size cap a deployment may configure.
const MaxBytesCeiling = 256 * 1024

// Request is one (resource, operation, cycle) triple, as produced by the
// Finder and consumed by the Doer.
type Request struct {
	CycleStart cycle.Instant
	Service    string
	RsrcType   string
	RsrcID     string
	Op         string
	Tags       []restag.Tag
	OpKwargs   map[string]interface{}
}

type wireRequest struct {
	CycleStart string                 `json:"cycle_start"`
	Service    string                 `json:"service"`
	RsrcType   string                 `json:"rsrc_type"`
	RsrcID     string                 `json:"rsrc_id"`
	Op         string                 `json:"op"`
	Tags       []restag.Tag           `json:"tags"`
	OpKwargs   map[string]interface{} `json:"op_kwargs,omitempty"`
}

// MarshalJSON renders the message in the wire shape documented in spec §6.
func (r Request) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireRequest{
		CycleStart: r.CycleStart.String(),
		Service:    r.Service,
		RsrcType:   r.RsrcType,
		RsrcID:     r.RsrcID,
		Op:         r.Op,
		Tags:       r.Tags,
		OpKwargs:   r.OpKwargs,
	})
}

// UnmarshalJSON parses the wire shape back into a Request.
func (r *Request) UnmarshalJSON(data []byte) error {
	var w wireRequest
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	t, err := cycle.ParseInstant(w.CycleStart)
	if err != nil {
		return fmt.Errorf("parse cycle_start %q: %w", w.CycleStart, err)
	}
	r.CycleStart = t
	r.Service = w.Service
	r.RsrcType = w.RsrcType
	r.RsrcID = w.RsrcID
	r.Op = w.Op
	r.Tags = w.Tags
	r.OpKwargs = w.OpKwargs
	return nil
}

// ErrTooLarge is returned by Validate when the encoded message exceeds cap.
type ErrTooLarge struct {
	Bytes int
	Cap   int
}

func (e *ErrTooLarge) Error() string {
	return fmt.Sprintf("operation request is %d bytes, exceeds cap of %d bytes", e.Bytes, e.Cap)
}

// Validate encodes the request and checks it against the size cap. It
// returns the encoded bytes on success so callers don't have to
// marshal twice.
func Validate(r Request, maxBytes int) ([]byte, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if maxBytes > MaxBytesCeiling {
		maxBytes = MaxBytesCeiling
	}
	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal operation request: %w", err)
	}
	if len(body) > maxBytes {
		return nil, &ErrTooLarge{Bytes: len(body), Cap: maxBytes}
	}
	return body, nil
}

// Decode parses a raw message body into a Request.
func Decode(body []byte) (Request, error) {
	var r Request
	if err := json.Unmarshal(body, &r); err != nil {
		return Request{}, fmt.Errorf("decode operation request: %w", err)
	}
	return r, nil
}
