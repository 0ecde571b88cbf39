// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/cloudformation"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/restag"
)

// Stack is a listed CloudFormation stack: its name and current tags, the
// two things the catalog's List needs.
type Stack struct {
	Name string
	Tags []restag.Tag
}

// StackDescription is an alias the SDK's Stack type.
type StackDescription cloudformation.Stack

// SDK returns the underlying struct from the AWS SDK.
func (d *StackDescription) SDK() *cloudformation.Stack {
	raw := cloudformation.Stack(*d)
	return &raw
}

func convertTags(sdkTags []*cloudformation.Tag) []restag.Tag {
	out := make([]restag.Tag, len(sdkTags))
	for i, t := range sdkTags {
		out[i] = restag.Tag{Key: aws.StringValue(t.Key), Value: aws.StringValue(t.Value)}
	}
	return out
}
