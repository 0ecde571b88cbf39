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

// EBSVolumeEntry builds the catalog entry for EBS volumes, backed by c.
// Volumes support only the backup operation: start/stop/reboot have no
// meaning for a volume, so this entry's Operations map omits them and
// a sched-start (etc.) tag on a volume is simply never matched.
func EBSVolumeEntry(c *ec2.Client) Entry {
	const service, rsrcType = "ec2", "volume"

	return Entry{
		Service:      service,
		ResourceType: rsrcType,
		List: func(ctx context.Context) ([]Resource, error) {
			vols, err := c.ListVolumes()
			if err != nil {
				return nil, err
			}
			out := make([]Resource, len(vols))
			for i, v := range vols {
				out[i] = Resource{ID: v.ID, Tags: v.Tags}
			}
			return out, nil
		},
		Operations: map[string]OperationDescriptor{
			"backup": {
				Name:       "backup",
				NeedsChild: true,
				Invoke: func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
					parentName, _ := restag.Get(req.Tags, naming.TagKeyName)
					childName, err := naming.BuildChildName(parentName, req.CycleStart, naming.ChildNameOptions{
						MaxLen: 255, // EBS snapshot description length limit
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
					return opresult.Wrap(c.BackupVolume(req.RsrcID, childName, childTags), awsclassify.Classify)
				},
			},
		},
	}
}
