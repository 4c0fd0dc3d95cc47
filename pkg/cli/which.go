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

// whichOutput is the serialized form of an executable lookup.
type whichOutput struct {
	Executable string `json:"executable" yaml:"executable"`
	Platform   string `json:"platform" yaml:"platform"`
}

func whichCmd() *cli.Command {
	return &cli.Command{
		Name:                  "which",
		EnableShellCompletion: true,
		Usage:                 "Locate the Omicron executable",
		Description: `Locate the omicron executable for the current platform.

When OMICRONROOT is set, the conventional install tree layout is assumed:
  $OMICRONROOT/<platform>/omicron.exe

Otherwise PATH is searched for omicron.exe, then omicron.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			execPath, err := resolver.New().Executable()
			if err != nil {
				return fmt.Errorf("failed to locate omicron executable: %w", err)
			}

			writer := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer writer.Close()

			return writer.Serialize(ctx, whichOutput{
				Executable: execPath,
				Platform:   resolver.Platform(),
			})
		},
	}
}
