// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/resourcegroups"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/session"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/tags"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/catalog"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/restag"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/term/color"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/term/log"
)

func buildFleetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleet",
		Short: "Cross-check catalog fleet membership against Resource Groups",
	}
	cmd.AddCommand(buildFleetAuditCmd())
	return cmd
}

// buildFleetAuditCmd compares a catalog entry's own List against an
// independent view of the same fleet from the Resource Groups
// SearchResources API, for one or more tag filters. The two sources have no shared code
// path, so a discrepancy is evidence of a List bug or a propagation
// delay rather than the kind of same-bug-twice blind spot a single
// source can't catch.
func buildFleetAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit <service:resource-type> <tag-key>=<tag-value> [<tag-key>=<tag-value>...]",
		Short: "Compare a catalog entry's List against Resource Groups for a tag filter",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resourceType := args[0]
			filterMaps := make([]map[string]string, 0, len(args)-1)
			for _, pair := range args[1:] {
				k, v, ok := strings.Cut(pair, "=")
				if !ok || k == "" {
					return printErrorAndReturn(fmt.Errorf("tag filter %q must be <key>=<value>", pair))
				}
				filterMaps = append(filterMaps, map[string]string{k: v})
			}
			filter := tags.Merge(filterMaps...)

			sess, err := (&session.Provider{}).Default()
			if err != nil {
				return printErrorAndReturn(fmt.Errorf("create AWS session: %w", err))
			}

			entry, ok := findEntry(catalog.Build(sess), resourceType)
			if !ok {
				return printErrorAndReturn(fmt.Errorf("unsupported resource type %q", resourceType))
			}

			catalogIDs, err := catalogMatchingIDs(cmd.Context(), entry, filter)
			if err != nil {
				return printErrorAndReturn(fmt.Errorf("list via catalog: %w", err))
			}

			rgResourceType, ok := map[string]string{
				"ec2:instance":         "AWS::EC2::Instance",
				"ec2:volume":           "AWS::EC2::Volume",
				"rds:instance":         "AWS::RDS::DBInstance",
				"rds:cluster":          "AWS::RDS::DBCluster",
				"cloudformation:stack": "AWS::CloudFormation::Stack",
			}[resourceType]
			if !ok {
				return printErrorAndReturn(fmt.Errorf("no Resource Groups resource type for %q", resourceType))
			}
			rgIDs, err := resourcegroups.New(sess).GetResourcesByTags(rgResourceType, filter)
			if err != nil {
				return printErrorAndReturn(fmt.Errorf("search resources via Resource Groups: %w", err))
			}

			report(catalogIDs, rgIDs)
			return nil
		},
	}
}

func findEntry(cat catalog.Catalog, resourceType string) (catalog.Entry, bool) {
	for _, e := range cat {
		if e.Service+":"+e.ResourceType == resourceType {
			return e, true
		}
	}
	return catalog.Entry{}, false
}

// catalogMatchingIDs lists every resource of entry's type and keeps only
// those whose tags satisfy every key/value pair in filter.
func catalogMatchingIDs(ctx context.Context, entry catalog.Entry, filter map[string]string) ([]string, error) {
	resources, err := entry.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(resources))
	for _, r := range resources {
		m := restag.Map(r.Tags)
		if matchesFilter(m, filter) {
			ids = append(ids, r.ID)
		}
	}
	return ids, nil
}

func matchesFilter(tags, filter map[string]string) bool {
	for k, v := range filter {
		if tags[k] != v {
			return false
		}
	}
	return true
}

// report compares the catalog's raw resource IDs against Resource
// Groups' ARNs by the ARN's trailing identifier segment. This is a
// best-effort normalization: most of the catalog's resource types put
// the bare ID after the ARN's last '/' or ':', but a mismatch here can
// also mean the normalization itself doesn't fit an unusual ARN shape,
// not necessarily that the fleets disagree.
func report(catalogIDs, rgIDs []string) {
	catalogSet := toSet(catalogIDs)
	rgSet := make(map[string]bool, len(rgIDs))
	rgDisplay := make(map[string]string, len(rgIDs))
	for _, arn := range rgIDs {
		id := arnLocalID(arn)
		rgSet[id] = true
		rgDisplay[id] = arn
	}

	var onlyInCatalog, onlyInRG []string
	for id := range catalogSet {
		if !rgSet[id] {
			onlyInCatalog = append(onlyInCatalog, id)
		}
	}
	for id := range rgSet {
		if !catalogSet[id] {
			onlyInRG = append(onlyInRG, rgDisplay[id])
		}
	}
	sort.Strings(onlyInCatalog)
	sort.Strings(onlyInRG)

	log.Printf("catalog: %d resource(s), Resource Groups: %d resource(s)\n", len(catalogIDs), len(rgIDs))
	if len(onlyInCatalog) == 0 && len(onlyInRG) == 0 {
		log.PrintSuccessln("fleets agree")
		return
	}
	if len(onlyInCatalog) > 0 {
		log.PrintWarningln(fmt.Sprintf("only in catalog List: %s", color.Emphasis(strings.Join(onlyInCatalog, ", "))))
	}
	if len(onlyInRG) > 0 {
		log.PrintWarningln(fmt.Sprintf("only in Resource Groups: %s", color.Emphasis(strings.Join(onlyInRG, ", "))))
	}
}

// arnLocalID extracts the trailing identifier segment from an ARN, e.g.
// "i-0123" from "arn:aws:ec2:us-east-1:111111111111:instance/i-0123" or
// "mydb" from "arn:aws:rds:us-east-1:111111111111:db:mydb".
func arnLocalID(arn string) string {
	if i := strings.LastIndex(arn, "/"); i != -1 {
		return arn[i+1:]
	}
	if i := strings.LastIndex(arn, ":"); i != -1 {
		return arn[i+1:]
	}
	return arn
}

func toSet(ids []string) map[string]bool {
	s := make(map[string]bool, len(ids))
	for _, id := range ids {
		s[id] = true
	}
	return s
}
