package cli

import (
	"fmt"
)

// Args represents the top-level command structure
type Args struct {
	Watch  *WatchCmd  `arg:"subcommand:watch" help:"Monitor the clipboard and record history"`
	List   *ListCmd   `arg:"subcommand:list" help:"List recorded entries, newest first"`
	Get    *GetCmd    `arg:"subcommand:get" help:"Print or copy back an entry"`
	Add    *AddCmd    `arg:"subcommand:add" help:"Record content from files or stdin"`
	Pin    *PinCmd    `arg:"subcommand:pin" help:"Pin or unpin an entry"`
	Delete *DeleteCmd `arg:"subcommand:delete" help:"Delete an entry"`
	Clear  *ClearCmd  `arg:"subcommand:clear" help:"Delete all entries, pinned included"`
	Config *ConfigCmd `arg:"subcommand:config" help:"Inspect or change configuration"`
	Stats  *StatsCmd  `arg:"subcommand:stats" help:"Show persisted history statistics"`

	ConfigPath *string `arg:"--config-path,env:CLIPWATCH_CONFIG" help:"Override config file location"`
}

// WatchCmd represents the 'clipwatch watch' command
type WatchCmd struct {
	Verbose bool `arg:"-v,--verbose" help:"Print a line for each capture"`
}

// ListCmd represents the 'clipwatch list' command
type ListCmd struct {
	Limit int `arg:"-n,--limit" help:"Maximum entries to show (0 = all)"`
}

// GetCmd represents the 'clipwatch get' command
type GetCmd struct {
	Index     *int `arg:"positional" help:"Entry index (0=newest, opens TUI if omitted)"`
	Clipboard bool `arg:"-c,--clipboard" help:"Copy the entry back to the clipboard"`
}

// AddCmd represents the 'clipwatch add' command
type AddCmd struct {
	Files []string `arg:"positional" help:"Files to record (stdin if omitted)"`
}

// PinCmd represents the 'clipwatch pin' command
type PinCmd struct {
	Index int `arg:"positional,required" help:"Entry index to pin or unpin"`
}

// DeleteCmd represents the 'clipwatch delete' command
type DeleteCmd struct {
	Index int `arg:"positional,required" help:"Entry index to delete"`
}

// ClearCmd represents the 'clipwatch clear' command
type ClearCmd struct {
	Force bool `arg:"-f,--force" help:"Skip confirmation prompt"`
}

// ConfigCmd represents the 'clipwatch config' command
type ConfigCmd struct {
	Get  *ConfigGetCmd  `arg:"subcommand:get" help:"Print one configuration value"`
	Set  *ConfigSetCmd  `arg:"subcommand:set" help:"Change one configuration value"`
	List *ConfigListCmd `arg:"subcommand:list" help:"Print all configuration values"`
}

// ConfigGetCmd represents the 'clipwatch config get' command
type ConfigGetCmd struct {
	Key string `arg:"positional,required" help:"Configuration key"`
}

// ConfigSetCmd represents the 'clipwatch config set' command
type ConfigSetCmd struct {
	Key   string `arg:"positional,required" help:"Configuration key"`
	Value string `arg:"positional,required" help:"New value"`
}

// ConfigListCmd represents the 'clipwatch config list' command
type ConfigListCmd struct{}

// StatsCmd represents the 'clipwatch stats' command
type StatsCmd struct{}

// Description returns the program description
func (Args) Description() string {
	return "clipwatch - clipboard history with pinning, exclusion patterns and persistence"
}

// Version returns the program version
func (Args) Version() string {
	return "clipwatch 0.1.0"
}

// Epilogue returns additional help text
func (Args) Epilogue() string {
	return `Examples:
  clipwatch watch                  # Record clipboard changes until interrupted
  clipwatch                        # Interactive history browser
  clipwatch list -n 10             # Show the ten newest entries
  clipwatch get -c 2               # Copy the third entry back to the clipboard
  echo "hello" | clipwatch add     # Record from stdin
  clipwatch pin 0                  # Pin the newest entry
  clipwatch config set exclude-patterns '^secret'

For more information, visit: https://github.com/rwalden/clipwatch`
}

// Validate performs validation on the parsed arguments
func (args *Args) Validate() error {
	if args.List != nil && args.List.Limit < 0 {
		return fmt.Errorf("limit must be non-negative")
	}
	if args.Get != nil && args.Get.Index != nil && *args.Get.Index < 0 {
		return fmt.Errorf("index must be non-negative")
	}
	if args.Pin != nil && args.Pin.Index < 0 {
		return fmt.Errorf("index must be non-negative")
	}
	if args.Delete != nil && args.Delete.Index < 0 {
		return fmt.Errorf("index must be non-negative")
	}
	return nil
}
