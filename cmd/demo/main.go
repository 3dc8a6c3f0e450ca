package main

import (
	"fmt"

	"github.com/rwalden/clipwatch/internal/clipboard/mockboard"
	"github.com/rwalden/clipwatch/internal/config"
	"github.com/rwalden/clipwatch/internal/history"
	"github.com/rwalden/clipwatch/internal/notify"
	"github.com/rwalden/clipwatch/internal/store/memstore"
)

func main() {
	fmt.Println("clipwatch history manager demo")

	store := memstore.NewMemoryStore()
	clip := mockboard.New()
	cfg := config.DefaultConfig()
	cfg.MaxHistorySize = 3

	manager := history.NewManager(store, clip, notify.NewNop(), cfg)
	defer manager.Dispose()

	manager.Load()
	fmt.Printf("Initial history size: %d\n\n", len(manager.Entries()))

	testContent := []string{
		"Hello, World! This is the first clipboard capture.",
		"package main\n\nimport \"fmt\"\n\nfunc main() {\n    fmt.Println(\"Hello, Go!\")\n}",
		"#!/bin/bash\necho \"Starting script...\"\nfor i in {1..5}; do\n    echo \"Processing $i\"\ndone",
		"SELECT * FROM users WHERE created_at > '2023-01-01' ORDER BY created_at DESC LIMIT 10;",
		"Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt.",
	}

	fmt.Println("Capturing content:")
	for i, content := range testContent {
		entry := manager.Add(content, "")
		fmt.Printf("%d. [%s] %s\n", i+1, entry.ContentType, manager.Preview(entry.Content))
	}

	entries := manager.Entries()
	fmt.Printf("\nHistory after capture (max %d unpinned kept):\n", cfg.MaxHistorySize)
	printEntries(manager)

	// Pin the oldest surviving entry so the next capture evicts around it.
	if len(entries) > 0 {
		manager.TogglePin(entries[len(entries)-1].ID)
	}
	manager.Add("one more capture, pushing an unpinned entry out", "")

	fmt.Println("\nHistory after pinning and one more capture:")
	printEntries(manager)
}

func printEntries(manager *history.Manager) {
	for i, entry := range manager.Entries() {
		marker := " "
		if entry.Pinned {
			marker = "*"
		}
		fmt.Printf("%s %d. %s\n", marker, i, manager.Preview(entry.Content))
	}
}
