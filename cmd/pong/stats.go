package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagStatsLimit int
	flagStatsTUI   bool
	flagStatsClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [variant]",
	Short: "Show the session journal",
	Long: `Display per-variant totals and the most recent sessions.
Without a variant, totals for every variant and the latest sessions of all
variants are shown.

Examples:
  pong stats
  pong stats classic --limit 20
  pong stats --tui
  pong stats rigid --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of recent sessions to show")
	statsCmd.Flags().BoolVar(&flagStatsTUI, "tui", false, "Browse the journal interactively")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete every session of the given variant")
}

func runStats(cmd *cobra.Command, args []string) error {
	var variant string
	if len(args) == 1 {
		variant = args[0]
		if !registry.Exists(variant) {
			return fmt.Errorf("unknown variant %q (run 'pong list' to see available variants)", variant)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagStatsClear:
		if variant == "" {
			return fmt.Errorf("--clear needs a variant")
		}
		if err := store.ClearSessions(variant); err != nil {
			return err
		}
		fmt.Printf("Cleared all %s sessions.\n", variant)
		return nil

	case flagStatsTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunJournal(store, width, height)
	}

	if err := printTotals(store, variant); err != nil {
		return err
	}
	return printRecent(store, variant)
}

func printTotals(store *storage.Store, variant string) error {
	all, err := store.GetAllVariantStats()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		if variant == "" || id == variant {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	fmt.Println("Totals")
	fmt.Println()
	if len(ids) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pong play' to record the first session!")
		return nil
	}

	fmt.Printf("  %-8s  %-8s  %-10s  %-10s  %-7s  %-7s  %s\n", "Variant", "Sessions", "Frames", "Time", "Walls", "Hits", "Last played")
	fmt.Printf("  %-8s  %-8s  %-10s  %-10s  %-7s  %-7s  %s\n", "-------", "--------", "------", "----", "-----", "----", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-8s  %-8d  %-10d  %-10s  %-7d  %-7d  %s\n",
			st.Variant, st.Sessions, st.TotalFrames, st.TotalDuration.Round(time.Second),
			st.WallBounces, st.PaddleHits, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	return nil
}

func printRecent(store *storage.Store, variant string) error {
	sessions, err := store.RecentSessions(variant, flagStatsLimit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}

	fmt.Println("Recent sessions")
	fmt.Println()
	fmt.Printf("  %-16s  %-8s  %-7s  %-8s  %-8s  %-6s  %s\n", "Date", "Variant", "Via", "Time", "Frames", "Walls", "Hits")
	fmt.Printf("  %-16s  %-8s  %-7s  %-8s  %-8s  %-6s  %s\n", "----", "-------", "---", "----", "------", "-----", "----")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-8s  %-7s  %-8s  %-8d  %-6d  %d\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.Variant, s.Frontend,
			s.Duration.Round(100*time.Millisecond), s.Frames, s.WallBounces, s.PaddleHits)
	}
	return nil
}
