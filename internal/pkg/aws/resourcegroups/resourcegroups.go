// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resourcegroups provides a client to make API requests to AWS
// Resource Groups (SearchResources). It is not part of any catalog entry's
// List; it backs schedctl's "fleet audit" diagnostic, which cross-checks
// a catalog entry's own Describe-based listing against what Resource
// Groups independently reports for the same tag filter.
package resourcegroups

import (
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/resourcegroups"
)

const resourceQueryType = "TAG_FILTERS_1_0"

type api interface {
	SearchResources(in *resourcegroups.SearchResourcesInput) (*resourcegroups.SearchResourcesOutput, error)
}

// ResourceGroups wraps an AWS Resource Groups client.
type ResourceGroups struct {
	client api
}

// New returns a ResourceGroups configured against the input session.
func New(s *session.Session) *ResourceGroups {
	return &ResourceGroups{
		client: resourcegroups.New(s),
	}
}

type tagFilter struct {
	Key    string   `json:"Key"`
	Values []string `json:"Values"`
}

type resourceQuery struct {
	ResourceTypeFilters []string    `json:"ResourceTypeFilters"`
	TagFilters          []tagFilter `json:"TagFilters"`
}

// searchResourcesQuery builds the JSON query string Resource Groups
// expects for a TAG_FILTERS_1_0 query: one resource type filter and one
// tag filter per key in tags.
func (rg *ResourceGroups) searchResourcesQuery(resourceType string, tags map[string]string) (string, error) {
	filters := make([]tagFilter, 0, len(tags))
	for k, v := range tags {
		filters = append(filters, tagFilter{Key: k, Values: []string{v}})
	}
	q := resourceQuery{
		ResourceTypeFilters: []string{resourceType},
		TagFilters:          filters,
	}
	out, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("marshal resource group query: %w", err)
	}
	return string(out), nil
}

// GetResourcesByTags returns the ARNs of every resource of resourceType
// tagged with every key/value pair in tags, following NextToken pages
// until Resource Groups reports none remaining.
func (rg *ResourceGroups) GetResourcesByTags(resourceType string, tags map[string]string) ([]string, error) {
	queryString, err := rg.searchResourcesQuery(resourceType, tags)
	if err != nil {
		return nil, err
	}

	var arns []string
	var nextToken *string
	for {
		out, err := rg.client.SearchResources(&resourcegroups.SearchResourcesInput{
			NextToken: nextToken,
			ResourceQuery: &resourcegroups.ResourceQuery{
				Type:  aws.String(resourceQueryType),
				Query: aws.String(queryString),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("search resource group with resource type %s: %w", resourceType, err)
		}
		for _, id := range out.ResourceIdentifiers {
			arns = append(arns, aws.StringValue(id.ResourceArn))
		}
		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}
	return arns, nil
}
