// Copyright (c) 2026 Keymaster Team
// Masterkey - parental control master key tool
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for masterkey using Cobra.
// It loads configuration, checks the version and requirement tables, and
// hands work to the form coordinator, either through the TUI or headlessly
// through the calc command. CLI code should remain thin.
package cli
