package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rwalden/clipwatch/internal/clipboard"
	"github.com/rwalden/clipwatch/internal/clipboard/nativeboard"
	"github.com/rwalden/clipwatch/internal/clipboard/sysboard"
	"github.com/rwalden/clipwatch/internal/config"
	"github.com/rwalden/clipwatch/internal/history"
	"github.com/rwalden/clipwatch/internal/notify"
	"github.com/rwalden/clipwatch/internal/store"
	"github.com/rwalden/clipwatch/internal/store/boltstore"
	"github.com/rwalden/clipwatch/internal/store/dbstore"
	"github.com/rwalden/clipwatch/internal/tui"
)

// CLI handles the command-line interface
type CLI struct {
	manager    *history.Manager
	store      store.Store
	clipboard  clipboard.Clipboard
	cfgManager *config.Manager
	cfg        *config.Config
}

// New creates a new CLI instance
func New() (*CLI, error) {
	return NewWithArgs(nil)
}

// NewWithArgs creates a CLI instance honoring a config path override.
func NewWithArgs(args *Args) (*CLI, error) {
	var cfgManager *config.Manager
	var err error
	if args != nil && args.ConfigPath != nil {
		cfgManager = config.NewManagerWithPath(*args.ConfigPath)
	} else {
		cfgManager, err = config.NewManager()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := cfgManager.Load()
	if err != nil {
		return nil, err
	}

	st, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	clip := detectClipboard()

	var notifier notify.Notifier = notify.NewNop()
	if cfg.EnableNotifications {
		notifier = notify.NewDesktop()
	}

	return &CLI{
		manager:    history.NewManager(st, clip, notifier, cfg),
		store:      st,
		clipboard:  clip,
		cfgManager: cfgManager,
		cfg:        cfg,
	}, nil
}

// openStore opens the configured storage backend.
func openStore(cfg *config.Config) (store.Store, error) {
	path := cfg.HistoryLocation
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		name := "history.db"
		if cfg.StorageBackend == "bolt" {
			name = "history.bolt"
		}
		path = filepath.Join(homeDir, ".config", "clipwatch", name)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	switch cfg.StorageBackend {
	case "bolt":
		return boltstore.NewBoltStore(path)
	default:
		return dbstore.NewSQLiteStore(path)
	}
}

// detectClipboard picks the system-command clipboard when its helper
// binaries exist, falling back to the native display-server binding.
func detectClipboard() clipboard.Clipboard {
	sys := sysboard.New()
	if sys.IsSupported() {
		return sys
	}
	return nativeboard.New()
}

// Close releases the storage backend.
func (c *CLI) Close() error {
	return c.store.Close()
}

// Execute runs the CLI command based on parsed arguments
func (c *CLI) Execute(args *Args) error {
	if err := args.Validate(); err != nil {
		return err
	}

	switch {
	case args.Watch != nil:
		return c.executeWatch(args.Watch)
	case args.List != nil:
		return c.executeList(args.List)
	case args.Get != nil:
		return c.executeGet(args.Get)
	case args.Add != nil:
		return c.executeAdd(args.Add)
	case args.Pin != nil:
		return c.executePin(args.Pin)
	case args.Delete != nil:
		return c.executeDelete(args.Delete)
	case args.Clear != nil:
		return c.executeClear(args.Clear)
	case args.Config != nil:
		return c.executeConfig(args.Config)
	case args.Stats != nil:
		return c.executeStats(args.Stats)
	default:
		return c.launchTUI()
	}
}

// executeWatch handles the 'clipwatch watch' command
func (c *CLI) executeWatch(cmd *WatchCmd) error {
	if cmd.Verbose {
		unsubscribe := c.manager.Subscribe(func() {
			entries := c.manager.Entries()
			if len(entries) > 0 {
				head := entries[0]
				fmt.Printf("captured [%s] %s\n", head.ContentType, c.manager.Preview(head.Content))
			}
		})
		defer unsubscribe()
	}

	c.manager.Init()
	defer c.manager.Dispose()

	fmt.Printf("Watching clipboard every %dms (ctrl-c to stop)\n", c.cfg.MonitoringInterval)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	fmt.Println("\nStopped.")
	return nil
}

// executeList handles the 'clipwatch list' command
func (c *CLI) executeList(cmd *ListCmd) error {
	c.manager.Load()
	entries := c.manager.Entries()

	if len(entries) == 0 {
		fmt.Println("History is empty.")
		return nil
	}

	limit := cmd.Limit
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}

	for i, entry := range entries[:limit] {
		marker := " "
		if entry.Pinned {
			marker = "*"
		}

		line := fmt.Sprintf("%3d %s [%s] %s", i, marker, entry.ContentType, c.manager.Preview(entry.Content))
		if c.cfg.ShowTimestamp {
			line += fmt.Sprintf("  (%s)", entry.Timestamp.Format("2006-01-02 15:04"))
		}
		fmt.Println(line)
	}

	return nil
}

// executeGet handles the 'clipwatch get' command
func (c *CLI) executeGet(cmd *GetCmd) error {
	if cmd.Index == nil {
		return c.launchTUI()
	}

	c.manager.Load()
	entry, err := c.entryAt(*cmd.Index)
	if err != nil {
		return err
	}

	if cmd.Clipboard {
		if !c.manager.CopyToClipboard(entry.ID) {
			return fmt.Errorf("entry %d not found", *cmd.Index)
		}
		fmt.Printf("Copied to clipboard: %s\n", c.manager.Preview(entry.Content))
		return nil
	}

	_, err = io.WriteString(os.Stdout, entry.Content)
	return err
}

// executeAdd handles the 'clipwatch add' command
func (c *CLI) executeAdd(cmd *AddCmd) error {
	c.manager.Load()

	if len(cmd.Files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		if len(data) == 0 {
			return fmt.Errorf("no input provided")
		}

		entry := c.manager.Add(string(data), "")
		fmt.Printf("Recorded: %s\n", c.manager.Preview(entry.Content))
		return nil
	}

	for _, filename := range cmd.Files {
		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}

		entry := c.manager.Add(string(data), filename)
		fmt.Printf("Recorded from %s: %s\n", filename, c.manager.Preview(entry.Content))
	}

	return nil
}

// executePin handles the 'clipwatch pin' command
func (c *CLI) executePin(cmd *PinCmd) error {
	c.manager.Load()
	entry, err := c.entryAt(cmd.Index)
	if err != nil {
		return err
	}

	c.manager.TogglePin(entry.ID)

	updated := c.manager.Entry(entry.ID)
	state := "Unpinned"
	if updated != nil && updated.Pinned {
		state = "Pinned"
	}
	fmt.Printf("%s: %s\n", state, c.manager.Preview(entry.Content))
	return nil
}

// executeDelete handles the 'clipwatch delete' command
func (c *CLI) executeDelete(cmd *DeleteCmd) error {
	c.manager.Load()
	entry, err := c.entryAt(cmd.Index)
	if err != nil {
		return err
	}

	c.manager.Delete(entry.ID)
	fmt.Printf("Deleted: %s\n", c.manager.Preview(entry.Content))
	return nil
}

// executeClear handles the 'clipwatch clear' command
func (c *CLI) executeClear(cmd *ClearCmd) error {
	c.manager.Load()
	entries := c.manager.Entries()

	if len(entries) == 0 {
		fmt.Println("History is already empty.")
		return nil
	}

	if !cmd.Force {
		fmt.Printf("This will delete %d entry(ies), pinned included. Continue? [y/N]: ", len(entries))
		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	c.manager.Clear()
	fmt.Printf("Cleared %d entry(ies).\n", len(entries))
	return nil
}

// executeConfig handles the 'clipwatch config' command
func (c *CLI) executeConfig(cmd *ConfigCmd) error {
	switch {
	case cmd.Get != nil:
		value, err := c.cfgManager.Get(cmd.Get.Key)
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil

	case cmd.Set != nil:
		if err := c.cfgManager.Update(cmd.Set.Key, cmd.Set.Value); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", cmd.Set.Key, cmd.Set.Value)
		return nil

	case cmd.List != nil:
		values, err := c.cfgManager.List()
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		fmt.Println("Current configuration:")
		for _, key := range keys {
			fmt.Printf("  %s = %s\n", key, values[key])
		}
		return nil

	default:
		return fmt.Errorf("no config subcommand specified")
	}
}

// executeStats handles the 'clipwatch stats' command
func (c *CLI) executeStats(cmd *StatsCmd) error {
	stats, err := c.store.Stats()
	if err != nil {
		return fmt.Errorf("failed to read storage stats: %w", err)
	}

	fmt.Printf("Entries: %d\n", stats.Entries)
	fmt.Printf("Size:    %d bytes\n", stats.Bytes)
	return nil
}

// launchTUI starts the interactive history browser with live monitoring.
func (c *CLI) launchTUI() error {
	c.manager.Init()
	defer c.manager.Dispose()

	model := tui.NewModel(c.manager, c.cfg.ShowTimestamp)
	p := tea.NewProgram(model, tea.WithAltScreen())

	// Re-render whenever the engine's state changes under the browser.
	unsubscribe := c.manager.Subscribe(func() {
		p.Send(tui.RefreshMsg{})
	})
	defer unsubscribe()

	_, err := p.Run()
	return err
}

// entryAt resolves a list index (0 = head) to an entry.
func (c *CLI) entryAt(index int) (*store.Entry, error) {
	entries := c.manager.Entries()
	if index < 0 || index >= len(entries) {
		return nil, fmt.Errorf("index %d out of range (0-%d)", index, len(entries)-1)
	}
	return entries[index], nil
}
