// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package catalog is the static, declarative registry mapping every
// supported (service, resource-type) pair to its list/describe behavior
// and its supported lifecycle operations (spec §4.2). Unlike the source
// project, which builds this table at process startup by instantiating
// polymorphic records keyed by naming convention, the catalog here is a
// compile-time table of Entry values: the provider API verb and argument
// shapes are closures bound directly to a typed client, so the supported
// matrix is discoverable by reading this package, and an unsupported
// (resource-type, operation) combination simply has no entry in the map —
// there is no runtime lookup that could fail.
package catalog

import (
	"context"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/opqueue"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/opresult"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/restag"
)

// Resource is one listed, taggable object: its physical identifier and its
// tag list at discovery time.
type Resource struct {
	ID   string
	Tags []restag.Tag
}

// InvokeConfig carries the per-cycle knobs an operation invocation needs
// that are not part of the queue message itself.
type InvokeConfig struct {
	CopyTags bool
}

// InvokeFunc executes one operation against one resource. It receives the
// full operation request (not just the resource ID) because backup
// operations need the parent's tag list and the cycle instant to build the
// child name and tags.
type InvokeFunc func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result

// OperationDescriptor describes one operation supported by an Entry.
type OperationDescriptor struct {
	// Name is the canonical operation name, e.g. "start", "backup",
	// "set-Enable-true". It is the suffix of the sched-<name> tag key.
	Name string
	// NeedsChild is true for operations that construct a child resource
	// (the backup family). Declared here so a catalog-build-time check
	// can confirm every backup-capable entry wires a child-name builder.
	NeedsChild bool
	Invoke     InvokeFunc
}

// Entry is one (service, resource-type) catalog row.
type Entry struct {
	Service      string
	ResourceType string
	// List enumerates every resource of this type in the current
	// account/region, paging internally, and returns them all at once; it
	// does not yield resources before the last page is read.
	List func(ctx context.Context) ([]Resource, error)
	// Operations is keyed by canonical operation name. A missing key means
	// the operation is not applicable to this resource type: the
	// rejection spec §4.2 requires happens here, by omission, rather than
	// at runtime.
	Operations map[string]OperationDescriptor
}

// OperationTagKey returns the reserved tag key for an operation name.
func OperationTagKey(op string) string {
	return restag.ReservedPrefix + op
}

// Supports reports whether this entry has a descriptor for the operation
// named by a tag key beginning with the reserved prefix.
func (e Entry) Supports(tagKey string) (OperationDescriptor, bool) {
	if !restag.IsReserved(tagKey) {
		return OperationDescriptor{}, false
	}
	op := tagKey[len(restag.ReservedPrefix):]
	d, ok := e.Operations[op]
	return d, ok
}

// Catalog is the full, ordered set of entries the Finder scans each cycle.
// Order is deterministic so that logs and test fixtures are stable;
// per spec §4.3 step 2, the Finder visits entries "in deterministic order."
type Catalog []Entry
