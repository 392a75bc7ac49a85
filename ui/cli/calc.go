// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/masterkey/internal/catalog"
	"github.com/toeirei/masterkey/internal/form"
	"github.com/toeirei/masterkey/internal/model"
)

// calcFlags maps the calc flags onto form field ids.
var calcFlags = map[string]model.Field{
	"inquiry":   model.FieldInquiry,
	"month":     model.FieldMonth,
	"day":       model.FieldDay,
	"device-id": model.FieldDeviceID,
}

func newCalcCmd() *cobra.Command {
	var platformName, versionRef string
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a master key without the TUI",
		Long: `Fills in the same form the TUI shows and prints the master key.
--version takes the one-based position or the "lower-upper" range shown by
'masterkey platforms'. It may be omitted for platforms with a single range.`,
		Example: `  masterkey calc --platform wii --inquiry 12345678 --month 8 --day 5
  masterkey calc --platform 3ds --version 7.0.0-7.1.0 --inquiry 0123456789 --month 8 --day 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := model.ParsePlatform(platformName)
			if err != nil {
				return err
			}

			coord := form.New(nil, calculator)
			if err := coord.SelectPlatform(p); err != nil {
				return err
			}
			if err := selectVersion(coord, p, versionRef); err != nil {
				return err
			}

			values := map[string]any{}
			for name, f := range calcFlags {
				if cmd.Flags().Changed(name) {
					v, _ := cmd.Flags().GetString(name)
					values[f.ID()] = v
				}
			}
			if err := coord.Load(values); err != nil {
				return err
			}

			key, err := coord.Submit(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
			return err
		},
	}

	cmd.Flags().StringVarP(&platformName, "platform", "p", "", "Platform id or name (wii, dsi, 3ds, wiiu, switch)")
	cmd.Flags().StringVar(&versionRef, "version", "", "System version range, by position or as lower-upper")
	cmd.Flags().StringP("inquiry", "i", "", "Inquiry number shown by the console")
	cmd.Flags().String("month", "", "Month of the console's current date")
	cmd.Flags().String("day", "", "Day of the console's current date")
	cmd.Flags().String("device-id", "", "Device id in hex")
	_ = cmd.MarkFlagRequired("platform")
	_ = cmd.MarkFlagRequired("inquiry")
	return cmd
}

// selectVersion applies ref to a coordinator that has just selected p.
// Single-range platforms are already resolved and only accept a matching
// ref.
func selectVersion(coord *form.Coordinator, p model.Platform, ref string) error {
	if coord.Variant() != model.VariantNone {
		if ref == "" {
			return nil
		}
		_, _, err := catalog.FindInterval(p, ref)
		return err
	}

	if ref == "" {
		var ranges []string
		for _, iv := range catalog.IntervalsFor(p) {
			ranges = append(ranges, iv.Range())
		}
		return fmt.Errorf("%w: pass --version with one of %s", catalog.ErrSelectionRequired, strings.Join(ranges, ", "))
	}
	i, _, err := catalog.FindInterval(p, ref)
	if err != nil {
		return err
	}
	return coord.SelectVersion(i)
}
