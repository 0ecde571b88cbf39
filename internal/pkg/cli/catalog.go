// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/cloudformation"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/ec2"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/aws/rds"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/catalog"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/term/log"
)

// offlineCatalog builds the full catalog against nil provider clients.
// Every Entry's List/Invoke closures capture a client pointer but "dump"
// never calls them: it only reads the static Service/ResourceType/
// Operations shape, so a live AWS session is unnecessary for this
// diagnostic.
func offlineCatalog() catalog.Catalog {
	return catalog.Catalog{
		catalog.EC2InstanceEntry((*ec2.Client)(nil)),
		catalog.EBSVolumeEntry((*ec2.Client)(nil)),
		catalog.RDSInstanceEntry((*rds.Client)(nil)),
		catalog.RDSClusterEntry((*rds.Client)(nil)),
		catalog.CFNStackEntry((*cloudformation.Client)(nil), catalog.EnableParamKey),
	}
}

type catalogEntryDump struct {
	Service      string   `yaml:"service"`
	ResourceType string   `yaml:"resource_type"`
	Operations   []string `yaml:"operations"`
}

func buildCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the static (service, resource-type) -> operation catalog",
	}
	cmd.AddCommand(buildCatalogDumpCmd())
	return cmd
}

func buildCatalogDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Render the supported catalog matrix as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var dump []catalogEntryDump
			for _, e := range offlineCatalog() {
				ops := make([]string, 0, len(e.Operations))
				for op := range e.Operations {
					ops = append(ops, op)
				}
				sort.Strings(ops)
				dump = append(dump, catalogEntryDump{
					Service:      e.Service,
					ResourceType: e.ResourceType,
					Operations:   ops,
				})
			}
			out, err := yaml.Marshal(dump)
			if err != nil {
				return printErrorAndReturn(err)
			}
			log.Print(string(out))
			return nil
		},
	}
}
