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

// versionOutput is the serialized form of a resolution.
type versionOutput struct {
	Version string `json:"version" yaml:"version"`
	Source  string `json:"source" yaml:"source"`
}

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:                  "version",
		EnableShellCompletion: true,
		Usage:                 "Resolve the effective Omicron version",
		Description: `Resolve the installed Omicron version token (vMAJORrREVISION).

Resolution precedence, first match wins:
  1. --path: the version token segment of the given executable path
  2. OMICRON_VERSION: explicit override variable
  3. OMICRONROOT: final segment of the installation root

Resolution operates on path text and environment values only; the
filesystem is never consulted. A failure to resolve is a configuration
error and exits non-zero.

# Examples

From an explicit executable path:
  omicron-env version --path /opt/virgosoft/Omicron/v2r1/Linux-x86_64/omicron.exe

From the environment:
  OMICRONROOT=/opt/virgosoft/Omicron/v2r1 omicron-env version --format json`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "Path to the omicron executable to extract the version from",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			res, err := resolver.New().Resolve(cmd.String("path"))
			if err != nil {
				return fmt.Errorf("failed to resolve omicron version: %w", err)
			}

			writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer writer.Close()

			return writer.Serialize(ctx, versionOutput{
				Version: res.Version.String(),
				Source:  string(res.Source),
			})
		},
	}
}
