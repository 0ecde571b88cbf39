// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package doer implements the queue-consumer side of the scheduler
// (spec §4.4): N parallel workers long-poll the operation queue, apply
// the expiration discipline, resolve and invoke the matching catalog
// operation, and route the outcome to acknowledge, retry, or dead-letter
// based on the provider call's classified result.
package doer

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/sqs"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/catalog"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/config"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/cycle"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/logging"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/opqueue"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/opresult"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/queue"
)

// Receiver is the subset of the SQS client a Doer worker consumes from.
type Receiver interface {
	Receive(maxMessages, waitTimeSeconds, visibilityTimeoutSeconds int64) ([]sqs.Message, error)
	Ack(receiptHandle string) error
	Nack(receiptHandle string) error
}

// DeadLetterSender is the subset of the SQS client used to explicitly
// route a permanently-failed operation request to the dead-letter
// channel, per spec §4.4: "permanent errors... cause the message to be
// NACKed into the dead-letter channel."
type DeadLetterSender interface {
	Send(body []byte) (string, error)
}

// longPollWaitSeconds and receiveBatchSize bound each worker's Receive
// call: up to 10 messages per poll (SQS's own batch ceiling), long-polling
// up to 20 seconds. A worker orders its batch by cycle-start age before
// processing, so a burst that spans more than one cycle services the
// messages nearest to the expiration bound first (spec §4.4).
const (
	longPollWaitSeconds = 20
	receiveBatchSize    = 10
)

// prioritizedMessage orders a decoded operation request by how close it
// is to the expiration bound: the older its cycle start, the sooner a
// worker should act on it.
type prioritizedMessage struct {
	msg sqs.Message
	req opqueue.Request
}

func (a prioritizedMessage) LessThan(b prioritizedMessage) bool {
	return a.req.CycleStart.Time().Before(b.req.CycleStart.Time())
}

// Driver runs the Doer's worker pool against one catalog.
type Driver struct {
	Catalog    catalog.Catalog
	Receiver   Receiver
	DeadLetter DeadLetterSender
	Cfg        config.Config
	Log        *logging.Logger

	// now is overridden in tests for deterministic expiration checks.
	now func() time.Time

	index map[string]catalog.Entry
}

func entryKey(service, rsrcType string) string {
	return service + "/" + rsrcType
}

func (d *Driver) buildIndex() {
	if d.index != nil {
		return
	}
	d.index = make(map[string]catalog.Entry, len(d.Catalog))
	for _, e := range d.Catalog {
		d.index[entryKey(e.Service, e.ResourceType)] = e
	}
}

func (d *Driver) clock() time.Time {
	if d.now != nil {
		return d.now()
	}
	return time.Now()
}

// Run starts n worker goroutines, each long-polling the queue and
// processing one message at a time, until ctx is cancelled. Worker
// parallelism is independent of the cycle boundary, per spec §4.4.
func (d *Driver) Run(ctx context.Context, n int) error {
	d.buildIndex()
	if n <= 0 {
		n = config.DefaultDoLambdaFnReservedConcurrentExecutions
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			return d.worker(gctx)
		})
	}
	return g.Wait()
}

func (d *Driver) worker(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		msgs, err := d.Receiver.Receive(receiveBatchSize, longPollWaitSeconds, int64(d.Cfg.OperationQueueVisibilityTimeoutSecs))
		if err != nil {
			d.Log.Error("receive from operation queue failed", map[string]interface{}{"error": err.Error()})
			continue
		}

		pq := queue.NewPriorityQueue[prioritizedMessage]()
		for _, msg := range msgs {
			req, err := opqueue.Decode(msg.Body)
			if err != nil {
				d.Log.Error("malformed operation request, dead-lettering", map[string]interface{}{"error": err.Error()})
				d.deadLetter(msg)
				continue
			}
			pq.Push(prioritizedMessage{msg: msg, req: req})
		}
		for {
			pm, ok := pq.Pop()
			if !ok {
				break
			}
			d.processMessage(ctx, pm.msg)
		}
	}
}

// processMessage implements one full step of spec §4.4: decode, check
// expiration, resolve the catalog entry and operation, invoke it, and
// route the outcome.
func (d *Driver) processMessage(ctx context.Context, msg sqs.Message) {
	req, err := opqueue.Decode(msg.Body)
	if err != nil {
		d.Log.Error("malformed operation request, dead-lettering", map[string]interface{}{"error": err.Error()})
		d.deadLetter(msg)
		return
	}

	if req.CycleStart.Expired(d.clock(), cycle.ExpirationThreshold) {
		d.Log.Info("operation request expired, discarding", map[string]interface{}{
			"rsrc_id":     req.RsrcID,
			"op":          req.Op,
			"cycle_start": req.CycleStart.String(),
		})
		d.ack(msg)
		return
	}

	entry, ok := d.index[entryKey(req.Service, req.RsrcType)]
	if !ok {
		d.Log.Error("no catalog entry for service/resource type, dead-lettering", map[string]interface{}{
			"service":   req.Service,
			"rsrc_type": req.RsrcType,
			"rsrc_id":   req.RsrcID,
		})
		d.deadLetter(msg)
		return
	}
	descriptor, ok := entry.Operations[req.Op]
	if !ok {
		d.Log.Error("unsupported operation for resource type, dead-lettering", map[string]interface{}{
			"service":   req.Service,
			"rsrc_type": req.RsrcType,
			"op":        req.Op,
			"rsrc_id":   req.RsrcID,
		})
		d.deadLetter(msg)
		return
	}

	result := descriptor.Invoke(ctx, req, catalog.InvokeConfig{CopyTags: d.Cfg.CopyTags})

	switch {
	case result.ShouldDeadLetter():
		d.Log.Error("permanent operation error, dead-lettering", map[string]interface{}{
			"rsrc_id": req.RsrcID,
			"op":      req.Op,
			"error":   result.Error(),
		})
		d.deadLetter(msg)
	case result.ShouldAcknowledge():
		if result.Kind == opresult.Benign {
			d.Log.Info("operation reported benign no-op, acknowledging", map[string]interface{}{
				"rsrc_id": req.RsrcID,
				"op":      req.Op,
			})
		} else {
			d.Log.Info("operation invoked successfully, acknowledging", map[string]interface{}{
				"rsrc_id": req.RsrcID,
				"op":      req.Op,
			})
		}
		d.ack(msg)
	default:
		d.Log.Warning("transient operation error, returning message for redelivery", map[string]interface{}{
			"rsrc_id": req.RsrcID,
			"op":      req.Op,
			"error":   result.Error(),
		})
		d.nack(msg)
	}
}

func (d *Driver) ack(msg sqs.Message) {
	if err := d.Receiver.Ack(msg.ReceiptHandle); err != nil {
		d.Log.Error("acknowledge failed", map[string]interface{}{"error": err.Error()})
	}
}

func (d *Driver) nack(msg sqs.Message) {
	if err := d.Receiver.Nack(msg.ReceiptHandle); err != nil {
		d.Log.Error("reset visibility failed", map[string]interface{}{"error": err.Error()})
	}
}

// deadLetter explicitly copies the original message body to the
// dead-letter channel, then removes it from the main queue. A failure to
// send to the dead-letter queue leaves the message in place for the
// main queue's own redrive policy to eventually catch.
func (d *Driver) deadLetter(msg sqs.Message) {
	if _, err := d.DeadLetter.Send(msg.Body); err != nil {
		d.Log.Error("dead-letter send failed, leaving message for redrive policy", map[string]interface{}{"error": err.Error()})
		return
	}
	d.ack(msg)
}
