// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"context"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/cloudformation"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/awsclassify"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/opqueue"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/opresult"
)

// CFNStackEntry builds the catalog entry for CloudFormation stacks,
// backed by c. Stacks support only the parameter-flip family: there is
// no generic "start"/"stop" verb for a declarative stack, so a named
// template parameter (conventionally "Enable") stands in for resource
// state.
func CFNStackEntry(c *cloudformation.Client, paramKey string) Entry {
	const service, rsrcType = "cloudformation", "stack"

	flip := func(value bool) func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
		return func(ctx context.Context, req opqueue.Request, cfg InvokeConfig) opresult.Result {
			return opresult.Wrap(c.FlipParameter(req.RsrcID, paramKey, value), awsclassify.Classify)
		}
	}

	return Entry{
		Service:      service,
		ResourceType: rsrcType,
		List: func(ctx context.Context) ([]Resource, error) {
			stacks, err := c.ListStacks()
			if err != nil {
				return nil, err
			}
			out := make([]Resource, len(stacks))
			for i, s := range stacks {
				out[i] = Resource{ID: s.Name, Tags: s.Tags}
			}
			return out, nil
		},
		Operations: map[string]OperationDescriptor{
			"set-" + paramKey + "-true": {
				Name:   "set-" + paramKey + "-true",
				Invoke: flip(true),
			},
			"set-" + paramKey + "-false": {
				Name:   "set-" + paramKey + "-false",
				Invoke: flip(false),
			},
		},
	}
}
