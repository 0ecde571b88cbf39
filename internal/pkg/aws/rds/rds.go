// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package rds provides a client to make API requests to Amazon Relational
// Database Service, covering DB instances and DB clusters (Aurora), the
// two taggable RDS resource types the scheduler operates on.
package rds

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/rds"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/restag"
)

type api interface {
	DescribeDBInstancesPages(*rds.DescribeDBInstancesInput, func(*rds.DescribeDBInstancesOutput, bool) bool) error
	DescribeDBClustersPages(*rds.DescribeDBClustersInput, func(*rds.DescribeDBClustersOutput, bool) bool) error
	ListTagsForResource(*rds.ListTagsForResourceInput) (*rds.ListTagsForResourceOutput, error)
	StartDBInstance(*rds.StartDBInstanceInput) (*rds.StartDBInstanceOutput, error)
	StopDBInstance(*rds.StopDBInstanceInput) (*rds.StopDBInstanceOutput, error)
	RebootDBInstance(*rds.RebootDBInstanceInput) (*rds.RebootDBInstanceOutput, error)
	StartDBCluster(*rds.StartDBClusterInput) (*rds.StartDBClusterOutput, error)
	StopDBCluster(*rds.StopDBClusterInput) (*rds.StopDBClusterOutput, error)
	FailoverDBCluster(*rds.FailoverDBClusterInput) (*rds.FailoverDBClusterOutput, error)
	CreateDBSnapshot(*rds.CreateDBSnapshotInput) (*rds.CreateDBSnapshotOutput, error)
	CreateDBClusterSnapshot(*rds.CreateDBClusterSnapshotInput) (*rds.CreateDBClusterSnapshotOutput, error)
}

// Client wraps an Amazon RDS client.
type Client struct {
	client api
}

// New returns a Client configured against the input session.
func New(s *session.Session) *Client {
	return &Client{client: rds.New(s)}
}

// Instance is a listed DB instance. Members of Aurora clusters are listed
// too; ListInstances does not filter them out.
type Instance struct {
	ID   string // DBInstanceIdentifier
	ARN  string
	Tags []restag.Tag
}

// Cluster is a listed Aurora DB cluster.
type Cluster struct {
	ID   string // DBClusterIdentifier
	ARN  string
	Tags []restag.Tag
}

// ListInstances pages through every DB instance, fetching tags per
// instance: unlike EC2, DescribeDBInstances does not return tags inline.
func (c *Client) ListInstances() ([]Instance, error) {
	var out []Instance
	var pageErr error
	err := c.client.DescribeDBInstancesPages(&rds.DescribeDBInstancesInput{}, func(page *rds.DescribeDBInstancesOutput, lastPage bool) bool {
		for _, db := range page.DBInstances {
			arn := aws.StringValue(db.DBInstanceArn)
			tags, err := c.listTags(arn)
			if err != nil {
				pageErr = err
				return false
			}
			out = append(out, Instance{
				ID:   aws.StringValue(db.DBInstanceIdentifier),
				ARN:  arn,
				Tags: tags,
			})
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("describe DB instances: %w", err)
	}
	if pageErr != nil {
		return nil, fmt.Errorf("list tags for DB instance: %w", pageErr)
	}
	return out, nil
}

// ListClusters pages through every Aurora DB cluster, fetching tags per cluster.
func (c *Client) ListClusters() ([]Cluster, error) {
	var out []Cluster
	var pageErr error
	err := c.client.DescribeDBClustersPages(&rds.DescribeDBClustersInput{}, func(page *rds.DescribeDBClustersOutput, lastPage bool) bool {
		for _, cl := range page.DBClusters {
			arn := aws.StringValue(cl.DBClusterArn)
			tags, err := c.listTags(arn)
			if err != nil {
				pageErr = err
				return false
			}
			out = append(out, Cluster{
				ID:   aws.StringValue(cl.DBClusterIdentifier),
				ARN:  arn,
				Tags: tags,
			})
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("describe DB clusters: %w", err)
	}
	if pageErr != nil {
		return nil, fmt.Errorf("list tags for DB cluster: %w", pageErr)
	}
	return out, nil
}

func (c *Client) listTags(arn string) ([]restag.Tag, error) {
	out, err := c.client.ListTagsForResource(&rds.ListTagsForResourceInput{ResourceName: aws.String(arn)})
	if err != nil {
		return nil, err
	}
	tags := make([]restag.Tag, len(out.TagList))
	for i, t := range out.TagList {
		tags[i] = restag.Tag{Key: aws.StringValue(t.Key), Value: aws.StringValue(t.Value)}
	}
	return tags, nil
}

// StartInstance starts a stopped, standalone DB instance.
func (c *Client) StartInstance(id string) error {
	_, err := c.client.StartDBInstance(&rds.StartDBInstanceInput{DBInstanceIdentifier: aws.String(id)})
	if err != nil {
		return fmt.Errorf("start DB instance %s: %w", id, err)
	}
	return nil
}

// StopInstance stops a running, standalone DB instance.
func (c *Client) StopInstance(id string) error {
	_, err := c.client.StopDBInstance(&rds.StopDBInstanceInput{DBInstanceIdentifier: aws.String(id)})
	if err != nil {
		return fmt.Errorf("stop DB instance %s: %w", id, err)
	}
	return nil
}

// RebootInstance reboots a DB instance in place.
func (c *Client) RebootInstance(id string) error {
	_, err := c.client.RebootDBInstance(&rds.RebootDBInstanceInput{DBInstanceIdentifier: aws.String(id)})
	if err != nil {
		return fmt.Errorf("reboot DB instance %s: %w", id, err)
	}
	return nil
}

// BackupInstance creates a manual DB snapshot.
func (c *Client) BackupInstance(id, snapshotID string, tags []restag.Tag) error {
	_, err := c.client.CreateDBSnapshot(&rds.CreateDBSnapshotInput{
		DBInstanceIdentifier: aws.String(id),
		DBSnapshotIdentifier: aws.String(snapshotID),
		Tags:                 toSDKTags(tags),
	})
	if err != nil {
		return fmt.Errorf("create snapshot of DB instance %s: %w", id, err)
	}
	return nil
}

// StartCluster starts a stopped Aurora cluster.
func (c *Client) StartCluster(id string) error {
	_, err := c.client.StartDBCluster(&rds.StartDBClusterInput{DBClusterIdentifier: aws.String(id)})
	if err != nil {
		return fmt.Errorf("start DB cluster %s: %w", id, err)
	}
	return nil
}

// StopCluster stops a running Aurora cluster.
func (c *Client) StopCluster(id string) error {
	_, err := c.client.StopDBCluster(&rds.StopDBClusterInput{DBClusterIdentifier: aws.String(id)})
	if err != nil {
		return fmt.Errorf("stop DB cluster %s: %w", id, err)
	}
	return nil
}

// FailoverCluster forces a failover to a different reader, which Aurora
// also performs as a full restart of the writer: used to implement the
// reboot-failover operation, since Aurora clusters have no direct reboot API.
func (c *Client) FailoverCluster(id string) error {
	_, err := c.client.FailoverDBCluster(&rds.FailoverDBClusterInput{DBClusterIdentifier: aws.String(id)})
	if err != nil {
		return fmt.Errorf("failover DB cluster %s: %w", id, err)
	}
	return nil
}

// BackupCluster creates a manual DB cluster snapshot.
func (c *Client) BackupCluster(id, snapshotID string, tags []restag.Tag) error {
	_, err := c.client.CreateDBClusterSnapshot(&rds.CreateDBClusterSnapshotInput{
		DBClusterIdentifier:         aws.String(id),
		DBClusterSnapshotIdentifier: aws.String(snapshotID),
		Tags:                        toSDKTags(tags),
	})
	if err != nil {
		return fmt.Errorf("create snapshot of DB cluster %s: %w", id, err)
	}
	return nil
}

func toSDKTags(tags []restag.Tag) []*rds.Tag {
	out := make([]*rds.Tag, len(tags))
	for i, t := range tags {
		out[i] = &rds.Tag{Key: aws.String(t.Key), Value: aws.String(t.Value)}
	}
	return out
}
