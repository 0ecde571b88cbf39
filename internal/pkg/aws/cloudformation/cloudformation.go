// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package cloudformation provides a client to make API requests to AWS
// CloudFormation, trimmed to what the scheduler needs: enumerating
// stacks and flipping a single parameter on an existing one, in place,
// without touching its template or any other parameter.
package cloudformation

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudformation"
	"github.com/google/uuid"
)

type api interface {
	DescribeStacksPages(*cloudformation.DescribeStacksInput, func(*cloudformation.DescribeStacksOutput, bool) bool) error
	DescribeStacks(*cloudformation.DescribeStacksInput) (*cloudformation.DescribeStacksOutput, error)
	UpdateStack(*cloudformation.UpdateStackInput) (*cloudformation.UpdateStackOutput, error)
}

// Client wraps an AWS CloudFormation client.
type Client struct {
	client api
}

// New creates a new Client.
func New(s *session.Session) *Client {
	return &Client{client: cloudformation.New(s)}
}

// ListStacks pages through every stack in the current account/region.
func (c *Client) ListStacks() ([]Stack, error) {
	var out []Stack
	err := c.client.DescribeStacksPages(&cloudformation.DescribeStacksInput{}, func(page *cloudformation.DescribeStacksOutput, lastPage bool) bool {
		for _, s := range page.Stacks {
			out = append(out, Stack{Name: aws.StringValue(s.StackName), Tags: convertTags(s.Tags)})
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("describe stacks: %w", err)
	}
	return out, nil
}

// Describe returns a description of an existing stack. If the stack does
// not exist, returns ErrStackNotFound.
func (c *Client) Describe(name string) (*StackDescription, error) {
	out, err := c.client.DescribeStacks(&cloudformation.DescribeStacksInput{StackName: aws.String(name)})
	if err != nil {
		if stackDoesNotExist(err) {
			return nil, &ErrStackNotFound{name: name}
		}
		return nil, fmt.Errorf("describe stack %s: %w", name, err)
	}
	if len(out.Stacks) == 0 {
		return nil, &ErrStackNotFound{name: name}
	}
	descr := StackDescription(*out.Stacks[0])
	return &descr, nil
}

// FlipParameter updates the named stack, preserving its current template
// and every parameter value except paramKey, which is set to the literal
// "true" or "false". Every other parameter is passed with UsePreviousValue
// so the update cannot drift any other setting: this is what makes the
// operation idempotent under at-least-once delivery (re-applying the same
// literal to a parameter already at that value is a no-op update).
func (c *Client) FlipParameter(stackName, paramKey string, value bool) error {
	descr, err := c.Describe(stackName)
	if err != nil {
		return err
	}

	literal := "false"
	if value {
		literal = "true"
	}

	params := make([]*cloudformation.Parameter, 0, len(descr.Parameters))
	found := false
	for _, p := range descr.Parameters {
		if aws.StringValue(p.ParameterKey) == paramKey {
			params = append(params, &cloudformation.Parameter{
				ParameterKey:   aws.String(paramKey),
				ParameterValue: aws.String(literal),
			})
			found = true
			continue
		}
		params = append(params, &cloudformation.Parameter{
			ParameterKey:     p.ParameterKey,
			UsePreviousValue: aws.Bool(true),
		})
	}
	if !found {
		params = append(params, &cloudformation.Parameter{
			ParameterKey:   aws.String(paramKey),
			ParameterValue: aws.String(literal),
		})
	}

	// A fresh ClientRequestToken is generated on every call, so CloudFormation
	// never treats two calls as the same update: two UpdateStack calls
	// sharing a token are treated as one update, which would wrongly
	// suppress a later, legitimate flip back.
	token, err := uuid.NewRandom()
	if err != nil {
		return fmt.Errorf("generate client request token: %w", err)
	}

	_, err = c.client.UpdateStack(&cloudformation.UpdateStackInput{
		StackName:           aws.String(stackName),
		UsePreviousTemplate: aws.Bool(true),
		Parameters:          params,
		Capabilities:        descr.Capabilities,
		ClientRequestToken:  aws.String(token.String()),
	})
	if err != nil {
		return fmt.Errorf("flip parameter %s on stack %s: %w", paramKey, stackName, err)
	}
	return nil
}
