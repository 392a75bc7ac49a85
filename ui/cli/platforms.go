// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/toeirei/masterkey/internal/catalog"
	"github.com/toeirei/masterkey/internal/model"
	"github.com/toeirei/masterkey/internal/policy"
	"gopkg.in/yaml.v3"
)

type platformInfo struct {
	ID       string        `yaml:"id" json:"id"`
	Name     string        `yaml:"name" json:"name"`
	Versions []versionInfo `yaml:"versions" json:"versions"`
}

type versionInfo struct {
	Index         int      `yaml:"index" json:"index"`
	Range         string   `yaml:"range" json:"range"`
	Variant       string   `yaml:"variant" json:"variant"`
	InquiryDigits int      `yaml:"inquiry_digits" json:"inquiry_digits"`
	Inputs        []string `yaml:"inputs" json:"inputs"`
}

// intervalsFor is replaced in tests.
var intervalsFor = catalog.IntervalsFor

func describePlatforms() ([]platformInfo, error) {
	var out []platformInfo
	for _, p := range model.Platforms() {
		info := platformInfo{ID: p.ID(), Name: p.String()}
		for i, iv := range intervalsFor(p) {
			v, err := catalog.ResolveVariant(p, &iv)
			if err != nil {
				return nil, fmt.Errorf("describe %v: %w", p, err)
			}
			req := policy.RequirementsFor(v)
			var inputs []string
			for _, f := range model.Fields() {
				if req.Needs(f) {
					inputs = append(inputs, f.ID())
				}
			}
			info.Versions = append(info.Versions, versionInfo{
				Index:         i + 1,
				Range:         iv.Range(),
				Variant:       v.Label(),
				InquiryDigits: req.InquiryDigits,
				Inputs:        inputs,
			})
		}
		out = append(out, info)
	}
	return out, nil
}

func newPlatformsCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List platforms, system versions and the inputs each one needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			platforms, err := describePlatforms()
			if err != nil {
				return err
			}
			return writePlatforms(cmd.OutOrStdout(), output, platforms)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", `Output format ("text", "yaml", "json")`)
	return cmd
}

func writePlatforms(w io.Writer, format string, platforms []platformInfo) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(platforms); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(platforms)
	case "text":
		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("PLATFORM", "#", "VERSIONS", "VARIANT", "DIGITS", "INPUTS")
		for _, p := range platforms {
			for _, v := range p.Versions {
				t.Row(p.ID, strconv.Itoa(v.Index), v.Range, v.Variant, strconv.Itoa(v.InquiryDigits), strings.Join(v.Inputs, ", "))
			}
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
