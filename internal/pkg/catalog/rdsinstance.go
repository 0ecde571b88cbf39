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

// RDSInstanceEntry builds the catalog entry for RDS DB instances, backed
// by c. Its List includes every DB instance, Aurora cluster members too.
func RDSInstanceEntry(c *rds.Client) Entry {
	const service, rsrcType = "rds", "instance"

	return Entry{
		Service:      service,
		ResourceType: rsrcType,
		List: func(ctx context.Context) ([]Resource, error) {
			insts, err := c.ListInstances()
			if err != nil {
				return nil, err
			}
			out := make([]Resource, len(insts))
			for i, inst := range insts {
				out[i] = Resource{ID: inst.ID, Tags: inst.Tags}
			}
			return out, nil
		},
		Operations: map[string]OperationDescriptor{
			"start": {
				Name: "start",
				Invoke: func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
					return opresult.Wrap(c.StartInstance(req.RsrcID), awsclassify.Classify)
				},
			},
			"stop": {
				Name: "stop",
				Invoke: func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
					return opresult.Wrap(c.StopInstance(req.RsrcID), awsclassify.Classify)
				},
			},
			"reboot": {
				Name: "reboot",
				Invoke: func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
					return opresult.Wrap(c.RebootInstance(req.RsrcID), awsclassify.Classify)
				},
			},
			"backup": {
				Name:       "backup",
				NeedsChild: true,
				Invoke: func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
					parentName, _ := restag.Get(req.Tags, naming.TagKeyName)
					childName, err := naming.BuildChildName(req.RsrcID, req.CycleStart, naming.ChildNameOptions{
						MaxLen: 63, // RDS DB snapshot identifier length limit
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
					return opresult.Wrap(c.BackupInstance(req.RsrcID, childName, childTags), awsclassify.Classify)
				},
			},
		},
	}
}
