package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"track-manager/core/reconcile"
	syncfeature "track-manager/feature/sync"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	// Flags for the sync commands
	syncStatsFlag bool
	syncJSONFlag  bool
	syncForceFlag bool
	syncFilesFlag []string
	syncQuietFlag bool
)

// syncCmd is the parent command for sync operations.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Inspect and run track synchronization",
	Long:  `Compare the local library with the object store and upload tracks that are new, changed or failed.`,
}

// syncStatusCmd prints the sync status of every local track.
var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the sync status of every local track",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cliLogger(false))
		if err != nil {
			return err
		}
		svc := syncfeature.NewService(rt.manager, rt.logger)
		report := svc.Status(cmd.Context(), syncStatsFlag)

		if syncJSONFlag {
			return writeJSON(report)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TRACK\tSIZE\tMODIFIED\tREMOTE\tSTATE")
		for _, s := range report.Files {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				s.Name,
				humanize.Bytes(uint64(s.LocalSizeBytes)),
				humanize.Time(s.LocalModifiedAt),
				remoteColumn(s),
				stateColumn(s))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if report.Stats != nil {
			printStats(*report.Stats)
		}
		return nil
	},
}

// syncRunCmd uploads tracks.
var syncRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Upload tracks that need syncing",
	Long: `Upload every track that needs syncing, every track with --force,
or only the named tracks with --files.

Examples:
  # Upload new and changed tracks
  sync run

  # Re-upload the whole library
  sync run --force

  # Upload two tracks
  sync run --files intro.mp3,outro.wav`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cliLogger(false))
		if err != nil {
			return err
		}
		svc := syncfeature.NewService(rt.manager, rt.logger)

		req := syncfeature.RunRequest{ForceSync: syncForceFlag}
		if cmd.Flags().Changed("files") {
			if len(syncFilesFlag) == 0 {
				return reconcile.ErrNoFiles
			}
			req.SpecificFiles = syncFilesFlag
		}

		var bar *pb.ProgressBar
		var onProgress reconcile.ProgressFunc
		if !syncQuietFlag && !syncJSONFlag {
			onProgress = func(p reconcile.SyncProgress) {
				if bar == nil {
					bar = pb.New(p.Total)
					bar.SetTemplate(`{{counters . }} {{bar . }} {{percent . }} {{string . "track"}}`)
					bar.Start()
				}
				bar.Set("track", p.CurrentName)
				bar.SetCurrent(int64(p.SyncedSoFar + p.FailedSoFar))
			}
		}

		result, runErr := svc.Run(cmd.Context(), req, onProgress)
		if bar != nil {
			bar.Finish()
		}

		if result != nil {
			if syncJSONFlag {
				if err := writeJSON(result); err != nil {
					return err
				}
			} else {
				printResult(result)
			}
		}
		if runErr != nil {
			return runErr
		}
		if !result.Success {
			return fmt.Errorf("%d track(s) failed to sync", len(result.Failed))
		}
		return nil
	},
}

// syncClearCmd clears recorded sync errors.
var syncClearCmd = &cobra.Command{
	Use:   "clear-errors [track...]",
	Short: "Clear recorded sync errors (all when no track is named)",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cliLogger(false))
		if err != nil {
			return err
		}
		n, err := syncfeature.NewService(rt.manager, rt.logger).ClearErrors(cmd.Context(), args...)
		if err != nil {
			return err
		}
		fmt.Printf("Cleared %d error(s)\n", n)
		return nil
	},
}

func init() {
	syncStatusCmd.Flags().BoolVar(&syncStatsFlag, "stats", false, "Include aggregate stats")
	syncStatusCmd.Flags().BoolVar(&syncJSONFlag, "json", false, "Output JSON")

	syncRunCmd.Flags().BoolVar(&syncForceFlag, "force", false, "Upload every local track")
	syncRunCmd.Flags().StringSliceVar(&syncFilesFlag, "files", nil, "Comma separated track names to upload")
	syncRunCmd.Flags().BoolVar(&syncQuietFlag, "quiet", false, "Disable the progress bar")
	syncRunCmd.Flags().BoolVar(&syncJSONFlag, "json", false, "Output JSON")

	syncCmd.AddCommand(syncStatusCmd, syncRunCmd, syncClearCmd)
	RootCmd.AddCommand(syncCmd)
}

func remoteColumn(s reconcile.SyncStatus) string {
	if !s.RemoteExists || s.RemoteSizeBytes == nil {
		return "-"
	}
	return humanize.Bytes(uint64(*s.RemoteSizeBytes))
}

func stateColumn(s reconcile.SyncStatus) string {
	switch {
	case s.SyncError != "":
		return "failed: " + s.SyncError
	case s.NeedsSync:
		return "pending (" + string(s.SyncReason) + ")"
	default:
		return "synced"
	}
}

func printStats(stats reconcile.SyncStats) {
	last := "never"
	if stats.LastSyncTimestamp != nil {
		last = humanize.Time(*stats.LastSyncTimestamp)
	}
	fmt.Printf("\nTotal: %d  Synced: %d  Needs sync: %d  Failed: %d  Last sync: %s\n",
		stats.Total, stats.Synced, stats.NeedsSync, stats.Failed, last)
}

func printResult(result *reconcile.SyncResult) {
	took := time.Duration(result.TotalTimeMs) * time.Millisecond
	fmt.Printf("Synced %s, failed %s, skipped %s in %s\n",
		humanize.Comma(int64(len(result.Synced))),
		humanize.Comma(int64(len(result.Failed))),
		humanize.Comma(int64(len(result.Skipped))),
		took)
	if len(result.Errors) > 0 {
		fmt.Println("Errors:")
		fmt.Println("  " + strings.Join(result.Errors, "\n  "))
	}
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
