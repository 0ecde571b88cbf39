// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"github.com/aws/aws-sdk-go/aws/session"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/cloudformation"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/ec2"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/rds"
)

// EnableParamKey is the CloudFormation template parameter name this
// deployment's stacks use to gate an enabled/disabled condition, per
// spec §4.2's example of a "sched-set-<param>-<true|false>" family.
const EnableParamKey = "Enable"

// Build assembles the full, ordered catalog of supported (service,
// resource-type) entries against one AWS session. Order is deterministic:
// ec2 instance, ec2 volume, rds instance, rds cluster, cloudformation
// stack. Callers that only need a subset of clients (schedctl's
// diagnostics, for instance) should construct Entry values directly
// rather than calling Build, which always wires every provider client.
func Build(s *session.Session) Catalog {
	ec2Client := ec2.New(s)
	rdsClient := rds.New(s)
	cfnClient := cloudformation.New(s)

	return Catalog{
		EC2InstanceEntry(ec2Client),
		EBSVolumeEntry(ec2Client),
		RDSInstanceEntry(rdsClient),
		RDSClusterEntry(rdsClient),
		CFNStackEntry(cfnClient, EnableParamKey),
	}
}
