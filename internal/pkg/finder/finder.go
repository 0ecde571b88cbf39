// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package finder implements the cycle-anchored scan described in spec
// §4.3: once per cycle, enumerate every catalog entry's resources,
// evaluate each resource's schedule tags against the cycle instant, and
// enqueue exactly one operation request per matching (resource,
// operation) pair.
package finder

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/catalog"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/config"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/cycle"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/logging"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/opqueue"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/restag"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/schedule"
)

// Sender is the subset of the SQS client the Finder needs. It is declared
// here, next to its only caller, rather than in the sqs package, since
// the Doer needs a disjoint subset (Receive/Ack/Nack) of the same client.
type Sender interface {
	Send(body []byte) (string, error)
}

// enqueueMaxAttempts and enqueueBaseDelay bound the Finder's per-message
// retry on enqueue failure, per spec §4.3: "Enqueue failures are retried
// with short bounded backoff per message; persistent failure is logged
// and that (resource, operation) is dropped for the cycle."
const (
	enqueueMaxAttempts = 3
	enqueueBaseDelay   = 100 * time.Millisecond
)

// Driver runs one Finder scan.
type Driver struct {
	Catalog catalog.Catalog
	Sender  Sender
	Cfg     config.Config
	Log     *logging.Logger

	// sleep is overridden in tests to avoid real waits during backoff.
	sleep func(time.Duration)
}

// Run performs one complete scan: every catalog entry is visited, in
// order, with enumeration running concurrently across entries; enqueuing
// for a given resource is single-threaded with respect to that resource.
// Run returns an error only for conditions that should fail the whole
// invocation (never a single entry's enumeration failure, which spec
// §4.3 requires be logged and skipped instead).
func (d *Driver) Run(ctx context.Context) error {
	if !d.Cfg.Enable {
		d.Log.Info("scheduler disabled, skipping cycle", nil)
		return nil
	}

	at := cycle.Now()
	d.Log.Info("starting finder cycle", map[string]interface{}{"cycle_start": at.String()})

	sleep := d.sleep
	if sleep == nil {
		sleep = time.Sleep
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, entry := range d.Catalog {
		entry := entry
		g.Go(func() error {
			d.scanEntry(gctx, entry, at, sleep)
			return nil
		})
	}
	return g.Wait()
}

// scanEntry enumerates one catalog entry's resources and enqueues any
// matching operation requests. Enumeration failure is logged, never
// returned: spec §4.3 requires the scan to continue with other entries.
func (d *Driver) scanEntry(ctx context.Context, entry catalog.Entry, at cycle.Instant, sleep func(time.Duration)) {
	resources, err := entry.List(ctx)
	if err != nil {
		d.Log.Error("enumerate catalog entry failed", map[string]interface{}{
			"service":       entry.Service,
			"resource_type": entry.ResourceType,
			"error":         err.Error(),
		})
		return
	}

	for _, rsrc := range resources {
		d.evaluateResource(ctx, entry, rsrc, at, sleep)
	}
}

// evaluateResource matches a single resource's operation tags against
// the cycle instant, enforces the conflict policy (at most one matching
// operation per resource per cycle), and enqueues the match, if any.
func (d *Driver) evaluateResource(ctx context.Context, entry catalog.Entry, rsrc catalog.Resource, at cycle.Instant, sleep func(time.Duration)) {
	type match struct {
		op  string
		raw string
	}
	var matches []match

	for _, tag := range rsrc.Tags {
		if !restag.IsReserved(tag.Key) {
			continue
		}
		descriptor, ok := entry.Supports(tag.Key)
		if !ok {
			continue
		}
		sched, err := schedule.Parse(tag.Value)
		if err != nil {
			d.Log.Warning("unparseable schedule tag, skipping", map[string]interface{}{
				"service":  entry.Service,
				"rsrc_id":  rsrc.ID,
				"tag_key":  tag.Key,
				"tag_value": tag.Value,
				"error":    err.Error(),
			})
			continue
		}
		if sched.Matches(at.Tuple()) {
			matches = append(matches, match{op: descriptor.Name, raw: tag.Value})
		}
	}

	if len(matches) == 0 {
		return
	}
	if len(matches) > 1 {
		ops := make([]string, len(matches))
		for i, m := range matches {
			ops[i] = m.op
		}
		d.Log.Error("conflicting operation tags matched in the same cycle, skipping resource", map[string]interface{}{
			"service":      entry.Service,
			"resource_type": entry.ResourceType,
			"rsrc_id":      rsrc.ID,
			"ops":          ops,
		})
		return
	}

	req := opqueue.Request{
		CycleStart: at,
		Service:    entry.Service,
		RsrcType:   entry.ResourceType,
		RsrcID:     rsrc.ID,
		Op:         matches[0].op,
		Tags:       rsrc.Tags,
	}
	d.enqueue(ctx, req, sleep)
}

// enqueue validates and sends one operation request, retrying a bounded
// number of times with linear backoff on send failure. An oversize
// message is a permanent, non-retryable condition: it is logged and
// dropped immediately.
func (d *Driver) enqueue(ctx context.Context, req opqueue.Request, sleep func(time.Duration)) {
	body, err := opqueue.Validate(req, d.Cfg.QueueMessageBytesMax)
	if err != nil {
		d.Log.Error("operation request rejected before send", map[string]interface{}{
			"rsrc_id": req.RsrcID,
			"op":      req.Op,
			"error":   err.Error(),
		})
		return
	}

	var lastErr error
	for attempt := 1; attempt <= enqueueMaxAttempts; attempt++ {
		if _, err := d.Sender.Send(body); err != nil {
			lastErr = err
			if attempt < enqueueMaxAttempts {
				select {
				case <-ctx.Done():
					return
				default:
					sleep(time.Duration(attempt) * enqueueBaseDelay)
				}
			}
			continue
		}
		d.Log.Info("enqueued operation request", map[string]interface{}{
			"rsrc_id": req.RsrcID,
			"op":      req.Op,
		})
		return
	}
	d.Log.Error("enqueue failed after bounded retries, dropping request for this cycle", map[string]interface{}{
		"rsrc_id": req.RsrcID,
		"op":      req.Op,
		"error":   lastErr.Error(),
	})
}
