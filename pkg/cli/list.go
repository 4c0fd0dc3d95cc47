/*
Copyright © 2025 GW-DetChar Developers
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/gw-detchar/omicron-env/pkg/resolver"
	"github.com/gw-detchar/omicron-env/pkg/serializer"
)

// listOutput is the serialized form of an install tree listing.
type listOutput struct {
	Installed []string `json:"installed" yaml:"installed"`
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:                  "list",
		EnableShellCompletion: true,
		Usage:                 "List Omicron versions in an install tree",
		Description: `List the Omicron versions installed under an install tree, the
directory holding one subdirectory per release:

  <prefix>/Omicron/v2r1
  <prefix>/Omicron/v2r2
  ...

Versions are sorted ascending by numeric comparison (major, then
revision). When --dir is not given, the parent directory of OMICRONROOT
is used.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Install tree directory (default: parent of $OMICRONROOT)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			installed, err := resolver.New().Installed(cmd.String("dir"))
			if err != nil {
				return fmt.Errorf("failed to list omicron versions: %w", err)
			}

			tokens := make([]string, 0, len(installed))
			for _, v := range installed {
				tokens = append(tokens, v.String())
			}

			writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer writer.Close()

			return writer.Serialize(ctx, listOutput{Installed: tokens})
		},
	}
}
