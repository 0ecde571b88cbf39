// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cloudformation

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/cloudformation/mocks"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/restag"
)

var errDoesNotExist = awserr.New("ValidationError", "Stack with id bogus does not exist", nil)

// updateStackInputMatcher matches every UpdateStackInput field except
// ClientRequestToken, which FlipParameter generates fresh on every call.
type updateStackInputMatcherType struct {
	want *cloudformation.UpdateStackInput
}

func updateStackInputMatcher(want *cloudformation.UpdateStackInput) gomock.Matcher {
	return updateStackInputMatcherType{want: want}
}

func (m updateStackInputMatcherType) Matches(x interface{}) bool {
	got, ok := x.(*cloudformation.UpdateStackInput)
	if !ok || got == nil {
		return false
	}
	if aws.StringValue(got.ClientRequestToken) == "" {
		return false
	}
	gotCopy := *got
	gotCopy.ClientRequestToken = nil
	return gomock.Eq(m.want).Matches(&gotCopy)
}

func (m updateStackInputMatcherType) String() string {
	return "matches UpdateStackInput ignoring ClientRequestToken"
}

func TestClient_ListStacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := mocks.NewMockapi(ctrl)
	mockAPI.EXPECT().DescribeStacksPages(gomock.Any(), gomock.Any()).DoAndReturn(
		func(in *cloudformation.DescribeStacksInput, fn func(*cloudformation.DescribeStacksOutput, bool) bool) error {
			fn(&cloudformation.DescribeStacksOutput{
				Stacks: []*cloudformation.Stack{
					{
						StackName: aws.String("web"),
						Tags:      []*cloudformation.Tag{{Key: aws.String("sched-set-Enable-true"), Value: aws.String("uTH:M=1T08:00")}},
					},
				},
			}, true)
			return nil
		})

	c := &Client{client: mockAPI}
	stacks, err := c.ListStacks()
	require.NoError(t, err)
	require.Equal(t, []Stack{
		{Name: "web", Tags: []restag.Tag{{Key: "sched-set-Enable-true", Value: "uTH:M=1T08:00"}}},
	}, stacks)
}

func TestClient_Describe_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := mocks.NewMockapi(ctrl)
	mockAPI.EXPECT().DescribeStacks(&cloudformation.DescribeStacksInput{StackName: aws.String("bogus")}).
		Return(nil, errDoesNotExist)

	c := &Client{client: mockAPI}
	_, err := c.Describe("bogus")
	require.EqualError(t, err, "stack named bogus cannot be found")
}

func TestClient_FlipParameter(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := mocks.NewMockapi(ctrl)
	gomock.InOrder(
		mockAPI.EXPECT().DescribeStacks(&cloudformation.DescribeStacksInput{StackName: aws.String("web")}).Return(&cloudformation.DescribeStacksOutput{
			Stacks: []*cloudformation.Stack{
				{
					StackName: aws.String("web"),
					Parameters: []*cloudformation.Parameter{
						{ParameterKey: aws.String("Enable"), ParameterValue: aws.String("false")},
						{ParameterKey: aws.String("InstanceType"), ParameterValue: aws.String("t3.micro")},
					},
				},
			},
		}, nil),
		mockAPI.EXPECT().UpdateStack(updateStackInputMatcher(&cloudformation.UpdateStackInput{
			StackName:           aws.String("web"),
			UsePreviousTemplate: aws.Bool(true),
			Parameters: []*cloudformation.Parameter{
				{ParameterKey: aws.String("Enable"), ParameterValue: aws.String("true")},
				{ParameterKey: aws.String("InstanceType"), UsePreviousValue: aws.Bool(true)},
			},
		})).Return(&cloudformation.UpdateStackOutput{}, nil),
	)

	c := &Client{client: mockAPI}
	require.NoError(t, c.FlipParameter("web", "Enable", true))
}

func TestClient_FlipParameter_DescribeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := mocks.NewMockapi(ctrl)
	mockAPI.EXPECT().DescribeStacks(gomock.Any()).Return(nil, errors.New("throttled"))

	c := &Client{client: mockAPI}
	err := c.FlipParameter("web", "Enable", true)
	require.EqualError(t, err, "describe stack web: throttled")
}
