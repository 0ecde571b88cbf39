// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/rds"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/awsclassify"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/naming"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/opqueue"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/opresult"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/restag"
)

// RDSClusterEntry builds the catalog entry for Aurora DB clusters, backed
// by c. Aurora has no direct reboot API; "reboot-failover" forces a
// failover to a reader, which also restarts the writer, so it stands in
// for reboot on this resource type. "reboot-backup" composes that
// failover with an immediate backup: some operators schedule a failover
// right before a snapshot to guarantee the writer is in a clean state.
func RDSClusterEntry(c *rds.Client) Entry {
	const service, rsrcType = "rds", "cluster"

	backupChild := func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
		parentName, _ := restag.Get(req.Tags, naming.TagKeyName)
		childName, err := naming.BuildChildName(req.RsrcID, req.CycleStart, naming.ChildNameOptions{
			MaxLen: 63, // RDS DB cluster snapshot identifier length limit
		})
		if err != nil {
			return opresult.Result{Kind: opresult.Permanent, Err: err}
		}
		childTags := naming.BuildChildTags(naming.ChildTagsOptions{
			ChildName:  childName,
			ParentName: parentName,
			ParentID:   req.RsrcID,
			Op:         OperationTagKey(req.Op),
			CycleStart: req.CycleStart,
			ParentTags: req.Tags,
			CopyTags:   cfg.CopyTags,
		})
		return opresult.Wrap(c.BackupCluster(req.RsrcID, childName, childTags), awsclassify.Classify)
	}

	return Entry{
		Service:      service,
		ResourceType: rsrcType,
		List: func(ctx context.Context) ([]Resource, error) {
			clusters, err := c.ListClusters()
			if err != nil {
				return nil, err
			}
			out := make([]Resource, len(clusters))
			for i, cl := range clusters {
				out[i] = Resource{ID: cl.ID, Tags: cl.Tags}
			}
			return out, nil
		},
		Operations: map[string]OperationDescriptor{
			"start": {
				Name: "start",
				Invoke: func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
					return opresult.Wrap(c.StartCluster(req.RsrcID), awsclassify.Classify)
				},
			},
			"stop": {
				Name: "stop",
				Invoke: func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
					return opresult.Wrap(c.StopCluster(req.RsrcID), awsclassify.Classify)
				},
			},
			"reboot-failover": {
				Name: "reboot-failover",
				Invoke: func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
					return opresult.Wrap(c.FailoverCluster(req.RsrcID), awsclassify.Classify)
				},
			},
			"backup": {
				Name:       "backup",
				NeedsChild: true,
				Invoke:     backupChild,
			},
			"reboot-backup": {
				Name:       "reboot-backup",
				NeedsChild: true,
				Invoke: func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
					r := opresult.Wrap(c.FailoverCluster(req.RsrcID), awsclassify.Classify)
					if r.Kind != opresult.Ok && r.Kind != opresult.Benign {
						return r
					}
					return backupChild(ctx, req, cfg)
				},
			},
		},
	}
}
