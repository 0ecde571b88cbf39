// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package rds

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/rds"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/rds/mocks"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/restag"
)

func TestClient_ListInstances(t *testing.T) {
	testCases := map[string]struct {
		mockAPI  func(m *mocks.Mockapi)
		wantErr  error
		wantInst []Instance
	}{
		"describe fails": {
			mockAPI: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeDBInstancesPages(gomock.Any(), gomock.Any()).Return(errors.New("throttled"))
			},
			wantErr: errors.New("describe DB instances: throttled"),
		},
		"list tags fails": {
			mockAPI: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeDBInstancesPages(gomock.Any(), gomock.Any()).DoAndReturn(
					func(in *rds.DescribeDBInstancesInput, fn func(*rds.DescribeDBInstancesOutput, bool) bool) error {
						fn(&rds.DescribeDBInstancesOutput{
							DBInstances: []*rds.DBInstance{
								{DBInstanceIdentifier: aws.String("db-1"), DBInstanceArn: aws.String("arn:aws:rds:us-east-1:1:db:db-1")},
							},
						}, true)
						return nil
					})
				m.EXPECT().ListTagsForResource(&rds.ListTagsForResourceInput{
					ResourceName: aws.String("arn:aws:rds:us-east-1:1:db:db-1"),
				}).Return(nil, errors.New("access denied"))
			},
			wantErr: errors.New("list tags for DB instance: access denied"),
		},
		"success": {
			mockAPI: func(m *mocks.Mockapi) {
				m.EXPECT().DescribeDBInstancesPages(gomock.Any(), gomock.Any()).DoAndReturn(
					func(in *rds.DescribeDBInstancesInput, fn func(*rds.DescribeDBInstancesOutput, bool) bool) error {
						fn(&rds.DescribeDBInstancesOutput{
							DBInstances: []*rds.DBInstance{
								{DBInstanceIdentifier: aws.String("db-1"), DBInstanceArn: aws.String("arn:aws:rds:us-east-1:1:db:db-1")},
							},
						}, true)
						return nil
					})
				m.EXPECT().ListTagsForResource(&rds.ListTagsForResourceInput{
					ResourceName: aws.String("arn:aws:rds:us-east-1:1:db:db-1"),
				}).Return(&rds.ListTagsForResourceOutput{
					TagList: []*rds.Tag{{Key: aws.String("sched-stop"), Value: aws.String("d=1 H:M=22:00")}},
				}, nil)
			},
			wantInst: []Instance{
				{
					ID:   "db-1",
					ARN:  "arn:aws:rds:us-east-1:1:db:db-1",
					Tags: []restag.Tag{{Key: "sched-stop", Value: "d=1 H:M=22:00"}},
				},
			},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockAPI := mocks.NewMockapi(ctrl)
			tc.mockAPI(mockAPI)

			c := &Client{client: mockAPI}
			insts, err := c.ListInstances()
			if tc.wantErr != nil {
				require.EqualError(t, err, tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantInst, insts)
		})
	}
}

func TestClient_FailoverCluster(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := mocks.NewMockapi(ctrl)
	mockAPI.EXPECT().FailoverDBCluster(&rds.FailoverDBClusterInput{
		DBClusterIdentifier: aws.String("cluster-1"),
	}).Return(&rds.FailoverDBClusterOutput{}, nil)

	c := &Client{client: mockAPI}
	require.NoError(t, c.FailoverCluster("cluster-1"))
}

func TestClient_BackupCluster(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAPI := mocks.NewMockapi(ctrl)
	tags := []restag.Tag{{Key: "sched-parent-id", Value: "cluster-1"}}
	mockAPI.EXPECT().CreateDBClusterSnapshot(&rds.CreateDBClusterSnapshotInput{
		DBClusterIdentifier:         aws.String("cluster-1"),
		DBClusterSnapshotIdentifier: aws.String("zsched-cluster-1-snap"),
		Tags:                        toSDKTags(tags),
	}).Return(&rds.CreateDBClusterSnapshotOutput{}, nil)

	c := &Client{client: mockAPI}
	require.NoError(t, c.BackupCluster("cluster-1", "zsched-cluster-1-snap", tags))
}
