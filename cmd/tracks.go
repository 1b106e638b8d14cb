package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"track-manager/feature/tracks"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// tracksCmd is the parent command for library queries.
var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "Query the track library",
}

var tracksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List local tracks",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cliLogger(false))
		if err != nil {
			return err
		}
		records := tracks.NewService(rt.storage, rt.logger).List(cmd.Context())

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TRACK\tSIZE\tTYPE\tMODIFIED")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Name, humanize.Bytes(uint64(r.SizeBytes)), r.ContentType, humanize.Time(r.ModifiedAt))
		}
		return w.Flush()
	},
}

var tracksLocateCmd = &cobra.Command{
	Use:   "locate <track>",
	Short: "Show where a track lives",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cliLogger(false))
		if err != nil {
			return err
		}
		loc, err := tracks.NewService(rt.storage, rt.logger).Locate(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Local:   %s\nRemote:  %s\nPrimary: %s\n", orDash(loc.Local), orDash(loc.Remote), loc.Primary)
		return nil
	},
}

var tracksURLCmd = &cobra.Command{
	Use:   "url <track>",
	Short: "Print the playback URL of a track",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cliLogger(false))
		if err != nil {
			return err
		}
		u, err := tracks.NewService(rt.storage, rt.logger).PlaybackURL(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(u)
		return nil
	},
}

func init() {
	tracksCmd.AddCommand(tracksListCmd, tracksLocateCmd, tracksURLCmd)
	RootCmd.AddCommand(tracksCmd)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
