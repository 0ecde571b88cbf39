// Copyright Amazon.com Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ec2 provides a client to make API requests to Amazon Elastic
// Compute Cloud, covering the two taggable resource types the scheduler
// operates on: instances and EBS volumes.
package ec2

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/restag"
)

type api interface {
	DescribeInstancesPages(*ec2.DescribeInstancesInput, func(*ec2.DescribeInstancesOutput, bool) bool) error
	DescribeVolumesPages(*ec2.DescribeVolumesInput, func(*ec2.DescribeVolumesOutput, bool) bool) error
	StartInstances(*ec2.StartInstancesInput) (*ec2.StartInstancesOutput, error)
	StopInstances(*ec2.StopInstancesInput) (*ec2.StopInstancesOutput, error)
	RebootInstances(*ec2.RebootInstancesInput) (*ec2.RebootInstancesOutput, error)
	CreateImage(*ec2.CreateImageInput) (*ec2.CreateImageOutput, error)
	CreateSnapshot(*ec2.CreateSnapshotInput) (*ec2.CreateSnapshotOutput, error)
}

// Client wraps an Amazon EC2 client.
type Client struct {
	client api
}

// New returns a Client configured against the input session.
func New(s *session.Session) *Client {
	return &Client{client: ec2.New(s)}
}

// Instance is a listed EC2 instance.
type Instance struct {
	ID    string
	State string
	Tags  []restag.Tag
}

// Volume is a listed EBS volume.
type Volume struct {
	ID    string
	State string
	Tags  []restag.Tag
}

// ListInstances pages through every EC2 instance in the account and region
// the client's session is bound to.
func (c *Client) ListInstances() ([]Instance, error) {
	var out []Instance
	err := c.client.DescribeInstancesPages(&ec2.DescribeInstancesInput{}, func(page *ec2.DescribeInstancesOutput, lastPage bool) bool {
		for _, reservation := range page.Reservations {
			for _, inst := range reservation.Instances {
				out = append(out, Instance{
					ID:    aws.StringValue(inst.InstanceId),
					State: aws.StringValue(inst.State.Name),
					Tags:  convertTags(inst.Tags),
				})
			}
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("describe EC2 instances: %w", err)
	}
	return out, nil
}

// ListVolumes pages through every EBS volume.
func (c *Client) ListVolumes() ([]Volume, error) {
	var out []Volume
	err := c.client.DescribeVolumesPages(&ec2.DescribeVolumesInput{}, func(page *ec2.DescribeVolumesOutput, lastPage bool) bool {
		for _, vol := range page.Volumes {
			out = append(out, Volume{
				ID:    aws.StringValue(vol.VolumeId),
				State: aws.StringValue(vol.State),
				Tags:  convertTags(vol.Tags),
			})
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("describe EBS volumes: %w", err)
	}
	return out, nil
}

// Start starts a stopped instance. Starting an already-running instance is
// a benign no-op at the API level.
func (c *Client) Start(id string) error {
	_, err := c.client.StartInstances(&ec2.StartInstancesInput{InstanceIds: aws.StringSlice([]string{id})})
	if err != nil {
		return fmt.Errorf("start instance %s: %w", id, err)
	}
	return nil
}

// Stop stops a running instance.
func (c *Client) Stop(id string) error {
	_, err := c.client.StopInstances(&ec2.StopInstancesInput{InstanceIds: aws.StringSlice([]string{id})})
	if err != nil {
		return fmt.Errorf("stop instance %s: %w", id, err)
	}
	return nil
}

// Hibernate stops an instance with hibernation, preserving its in-memory
// state. The instance must have been launched with hibernation enabled;
// otherwise the provider rejects the call, which the Doer classifies as a
// permanent error.
func (c *Client) Hibernate(id string) error {
	_, err := c.client.StopInstances(&ec2.StopInstancesInput{
		InstanceIds: aws.StringSlice([]string{id}),
		Hibernate:   aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("hibernate instance %s: %w", id, err)
	}
	return nil
}

// Reboot reboots a running instance in place.
func (c *Client) Reboot(id string) error {
	_, err := c.client.RebootInstances(&ec2.RebootInstancesInput{InstanceIds: aws.StringSlice([]string{id})})
	if err != nil {
		return fmt.Errorf("reboot instance %s: %w", id, err)
	}
	return nil
}

// BackupInstance creates an AMI from the instance with the given name and
// tags. Name uniqueness (via the random suffix in the naming package) is
// what makes this safe under at-least-once delivery: a duplicate request
// yields two distinct images rather than colliding on one.
//
// noReboot controls whether the provider is allowed to reboot the instance
// to quiesce its filesystems before capture. Plain sched-backup leaves the
// instance running (noReboot true); sched-reboot-backup reboots explicitly
// first and passes noReboot true here too, so the instance is never
// rebooted twice for one operation.
func (c *Client) BackupInstance(id, imageName string, tags []restag.Tag, noReboot bool) error {
	_, err := c.client.CreateImage(&ec2.CreateImageInput{
		InstanceId: aws.String(id),
		Name:       aws.String(imageName),
		NoReboot:   aws.Bool(noReboot),
		TagSpecifications: []*ec2.TagSpecification{
			{ResourceType: aws.String(ec2.ResourceTypeImage), Tags: toSDKTags(tags)},
		},
	})
	if err != nil {
		return fmt.Errorf("create image from instance %s: %w", id, err)
	}
	return nil
}

// BackupVolume creates a snapshot of the volume with the given description
// and tags.
func (c *Client) BackupVolume(id, description string, tags []restag.Tag) error {
	_, err := c.client.CreateSnapshot(&ec2.CreateSnapshotInput{
		VolumeId:    aws.String(id),
		Description: aws.String(description),
		TagSpecifications: []*ec2.TagSpecification{
			{ResourceType: aws.String(ec2.ResourceTypeSnapshot), Tags: toSDKTags(tags)},
		},
	})
	if err != nil {
		return fmt.Errorf("create snapshot of volume %s: %w", id, err)
	}
	return nil
}

func convertTags(sdkTags []*ec2.Tag) []restag.Tag {
	out := make([]restag.Tag, len(sdkTags))
	for i, t := range sdkTags {
		out[i] = restag.Tag{Key: aws.StringValue(t.Key), Value: aws.StringValue(t.Value)}
	}
	return out
}

func toSDKTags(tags []restag.Tag) []*ec2.Tag {
	out := make([]*ec2.Tag, len(tags))
	for i, t := range tags {
		out[i] = &ec2.Tag{Key: aws.String(t.Key), Value: aws.String(t.Value)}
	}
	return out
}
