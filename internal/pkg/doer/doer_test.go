// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package doer

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/sqs"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/catalog"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/config"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/cycle"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/logging"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/opqueue"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/opresult"
)

type fakeReceiver struct {
	acked   []string
	nacked  []string
}

func (f *fakeReceiver) Receive(int64, int64, int64) ([]sqs.Message, error) { return nil, nil }
func (f *fakeReceiver) Ack(receiptHandle string) error                     { f.acked = append(f.acked, receiptHandle); return nil }
func (f *fakeReceiver) Nack(receiptHandle string) error                    { f.nacked = append(f.nacked, receiptHandle); return nil }

type fakeDeadLetter struct {
	sent [][]byte
}

func (f *fakeDeadLetter) Send(body []byte) (string, error) {
	f.sent = append(f.sent, body)
	return "mock-id", nil
}

func testDriver(entry catalog.Entry, recv *fakeReceiver, dl *fakeDeadLetter, at time.Time) *Driver {
	var buf strings.Builder
	d := &Driver{
		Catalog:    catalog.Catalog{entry},
		Receiver:   recv,
		DeadLetter: dl,
		Cfg:        config.Config{CopyTags: true},
		Log:        logging.New(&buf, config.LogLevelDebug),
		now:        func() time.Time { return at },
	}
	d.buildIndex()
	return d
}

func reqMessage(t *testing.T, req opqueue.Request) sqs.Message {
	body, err := opqueue.Validate(req, 0)
	require.NoError(t, err)
	return sqs.Message{ReceiptHandle: "rh-1", Body: body}
}

// batchOnceReceiver hands back a fixed batch on its first Receive call,
// then calls onExhausted and reports no further messages, letting a test
// drive exactly one worker iteration.
type batchOnceReceiver struct {
	batch       []sqs.Message
	served      bool
	onExhausted func()
}

func (r *batchOnceReceiver) Receive(int64, int64, int64) ([]sqs.Message, error) {
	if !r.served {
		r.served = true
		return r.batch, nil
	}
	if r.onExhausted != nil {
		r.onExhausted()
	}
	return nil, nil
}
func (r *batchOnceReceiver) Ack(string) error  { return nil }
func (r *batchOnceReceiver) Nack(string) error { return nil }

func TestDriver_Worker_ProcessesBatchInExpirationOrder(t *testing.T) {
	older := cycle.FromTime(time.Date(2026, 7, 30, 7, 50, 0, 0, time.UTC))
	newer := cycle.FromTime(time.Date(2026, 7, 30, 8, 0, 0, 0, time.UTC))
	reqOld := opqueue.Request{CycleStart: older, Service: "ec2", RsrcType: "instance", RsrcID: "i-old", Op: "start"}
	reqNew := opqueue.Request{CycleStart: newer, Service: "ec2", RsrcType: "instance", RsrcID: "i-new", Op: "start"}

	var order []string
	entry := catalog.Entry{
		Service:      "ec2",
		ResourceType: "instance",
		Operations: map[string]catalog.OperationDescriptor{
			"start": {
				Name: "start",
				Invoke: func(ctx context.Context, req opqueue.Request, cfg catalog.InvokeConfig) opresult.Result {
					order = append(order, req.RsrcID)
					return opresult.OK()
				},
			},
		},
	}

	// Enqueued newest-first, so a FIFO worker would process i-new before
	// i-old; the priority queue must still service i-old first.
	recv := &batchOnceReceiver{batch: []sqs.Message{reqMessage(t, reqNew), reqMessage(t, reqOld)}}
	dl := &fakeDeadLetter{}
	// At the older cycle's own start neither request is expired, so both
	// are invoked.
	d := testDriver(entry, recv, dl, older.Time())

	ctx, cancel := context.WithCancel(context.Background())
	recv.onExhausted = cancel

	require.NoError(t, d.worker(ctx))
	require.Equal(t, []string{"i-old", "i-new"}, order)
}

func TestDriver_ProcessMessage_Expired(t *testing.T) {
	cycleStart := cycle.FromTime(time.Date(2026, 7, 30, 8, 0, 0, 0, time.UTC))
	req := opqueue.Request{CycleStart: cycleStart, Service: "ec2", RsrcType: "instance", RsrcID: "i-1", Op: "start"}

	recv := &fakeReceiver{}
	dl := &fakeDeadLetter{}
	at := cycleStart.Time().Add(9*time.Minute + 30*time.Second)
	d := testDriver(catalog.Entry{Service: "ec2", ResourceType: "instance"}, recv, dl, at)

	d.processMessage(context.Background(), reqMessage(t, req))

	require.Equal(t, []string{"rh-1"}, recv.acked)
	require.Empty(t, dl.sent)
}

func TestDriver_ProcessMessage_UnknownCatalogEntryDeadLetters(t *testing.T) {
	cycleStart := cycle.Now()
	req := opqueue.Request{CycleStart: cycleStart, Service: "ec2", RsrcType: "instance", RsrcID: "i-1", Op: "start"}

	recv := &fakeReceiver{}
	dl := &fakeDeadLetter{}
	d := testDriver(catalog.Entry{Service: "rds", ResourceType: "cluster"}, recv, dl, cycleStart.Time())

	d.processMessage(context.Background(), reqMessage(t, req))

	require.Len(t, dl.sent, 1)
	require.Equal(t, []string{"rh-1"}, recv.acked)
}

func TestDriver_ProcessMessage_OkResultAcknowledges(t *testing.T) {
	cycleStart := cycle.Now()
	req := opqueue.Request{CycleStart: cycleStart, Service: "ec2", RsrcType: "instance", RsrcID: "i-1", Op: "start"}

	entry := catalog.Entry{
		Service:      "ec2",
		ResourceType: "instance",
		Operations: map[string]catalog.OperationDescriptor{
			"start": {
				Name: "start",
				Invoke: func(ctx context.Context, req opqueue.Request, cfg catalog.InvokeConfig) opresult.Result {
					return opresult.OK()
				},
			},
		},
	}
	recv := &fakeReceiver{}
	dl := &fakeDeadLetter{}
	d := testDriver(entry, recv, dl, cycleStart.Time())

	d.processMessage(context.Background(), reqMessage(t, req))

	require.Equal(t, []string{"rh-1"}, recv.acked)
	require.Empty(t, dl.sent)
	require.Empty(t, recv.nacked)
}

func TestDriver_ProcessMessage_TransientResultNacks(t *testing.T) {
	cycleStart := cycle.Now()
	req := opqueue.Request{CycleStart: cycleStart, Service: "ec2", RsrcType: "instance", RsrcID: "i-1", Op: "start"}

	entry := catalog.Entry{
		Service:      "ec2",
		ResourceType: "instance",
		Operations: map[string]catalog.OperationDescriptor{
			"start": {
				Name: "start",
				Invoke: func(ctx context.Context, req opqueue.Request, cfg catalog.InvokeConfig) opresult.Result {
					return opresult.Result{Kind: opresult.Transient}
				},
			},
		},
	}
	recv := &fakeReceiver{}
	dl := &fakeDeadLetter{}
	d := testDriver(entry, recv, dl, cycleStart.Time())

	d.processMessage(context.Background(), reqMessage(t, req))

	require.Equal(t, []string{"rh-1"}, recv.nacked)
	require.Empty(t, recv.acked)
	require.Empty(t, dl.sent)
}

func TestDriver_ProcessMessage_PermanentResultDeadLetters(t *testing.T) {
	cycleStart := cycle.Now()
	req := opqueue.Request{CycleStart: cycleStart, Service: "ec2", RsrcType: "instance", RsrcID: "i-1", Op: "start"}

	entry := catalog.Entry{
		Service:      "ec2",
		ResourceType: "instance",
		Operations: map[string]catalog.OperationDescriptor{
			"start": {
				Name: "start",
				Invoke: func(ctx context.Context, req opqueue.Request, cfg catalog.InvokeConfig) opresult.Result {
					return opresult.Result{Kind: opresult.Permanent}
				},
			},
		},
	}
	recv := &fakeReceiver{}
	dl := &fakeDeadLetter{}
	d := testDriver(entry, recv, dl, cycleStart.Time())

	d.processMessage(context.Background(), reqMessage(t, req))

	require.Len(t, dl.sent, 1)
	require.Equal(t, []string{"rh-1"}, recv.acked)
	require.Empty(t, recv.nacked)
}
