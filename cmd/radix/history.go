package main

import (
	"context"
	"fmt"

	"v.io/x/lib/cmdline"

	"github.com/funvibe/radixquest/internal/history"
)

func runHistory(env *cmdline.Env, args []string) error {
	if len(args) != 0 {
		return env.UsageErrorf("history: unexpected arguments %v", args)
	}
	s, err := loadSettings(&common)
	if err != nil {
		return err
	}
	path, err := s.file.HistoryPath()
	if err != nil {
		return err
	}
	ctx := context.Background()
	store, err := history.Open(ctx, path, s.file.History.Limit)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		return store.Clear(ctx)
	}
	entries, err := store.List(ctx, flagHistoryN)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(env.Stdout, "%s  %-6s %s = %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Mode, e.Expression, e.Display)
	}
	return nil
}
