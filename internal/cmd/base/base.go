// Package base holds the collaborators shared by every CLI command.
package base

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
)

// Command is embedded by all CLI commands.
type Command struct {
	// Log is the logger to use.
	Log hclog.Logger

	// UI is used for command output.
	UI cli.Ui
}
