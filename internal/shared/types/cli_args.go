package types

import "time"

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	Source     string
	DataPath   string
	Profile    string
	Pages      []string
	ReportName string
	ReportType []string
	Dir        string
	Timeout    time.Duration
	Quiet      bool
}
