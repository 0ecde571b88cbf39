// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/ec2"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/awsclassify"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/naming"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/opqueue"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/opresult"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/restag"
)

// EC2InstanceEntry builds the catalog entry for EC2 instances, backed by c.
func EC2InstanceEntry(c *ec2.Client) Entry {
	const service, rsrcType = "ec2", "instance"

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
					return opresult.Wrap(c.Start(req.RsrcID), awsclassify.Classify)
				},
			},
			"stop": {
				Name: "stop",
				Invoke: func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
					return opresult.Wrap(c.Stop(req.RsrcID), awsclassify.Classify)
				},
			},
			"hibernate": {
				Name: "hibernate",
				Invoke: func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
					return opresult.Wrap(c.Hibernate(req.RsrcID), awsclassify.Classify)
				},
			},
			"reboot": {
				Name: "reboot",
				Invoke: func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
					return opresult.Wrap(c.Reboot(req.RsrcID), awsclassify.Classify)
				},
			},
			"backup": {
				Name:       "backup",
				NeedsChild: true,
				Invoke:     backupChild(c),
			},
			"reboot-backup": {
				Name:       "reboot-backup",
				NeedsChild: true,
				Invoke: func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
					r := opresult.Wrap(c.Reboot(req.RsrcID), awsclassify.Classify)
					if r.Kind != opresult.Ok && r.Kind != opresult.Benign {
						return r
					}
					return backupChild(c)(ctx, req, cfg)
				},
			},
		},
	}
}

// backupChild returns an Invoke closure that creates an AMI from the
// instance without rebooting it: plain sched-backup leaves the instance
// running, and sched-reboot-backup has already rebooted it explicitly by
// the time this runs, so CreateImage must never reboot a second time.
func backupChild(c *ec2.Client) func(context.Context, opqueue.Request, InvokeConfig) opresult.Result {
	return func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
		parentName, _ := restag.Get(req.Tags, naming.TagKeyName)
		childName, err := naming.BuildChildName(parentName, req.CycleStart, naming.ChildNameOptions{
			MaxLen: 128, // EC2 AMI name length limit
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
		return opresult.Wrap(c.BackupInstance(req.RsrcID, childName, childTags, true), awsclassify.Classify)
	}
}
