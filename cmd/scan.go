package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/kasuboski/sceneid/pkg/identity"
	"github.com/kasuboski/sceneid/pkg/library"
	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/manager"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// scanCmd resolves every media file found in a directory
var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "resolve the release names of media files in a directory",
	Long:  `walk a directory and resolve the release name of every media file found`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		withManager(func(ctx context.Context, m manager.IdentityManager) {
			log := logger.FromCtx(ctx, zap.String("dir", args[0]))

			releases, err := library.New(os.DirFS(args[0])).FindReleases(ctx)
			if err != nil {
				log.Fatal("failed to scan directory", zap.Error(err))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FILE\tSIZE\tSERIES\tSEASON\tEPISODES\tSHOW")
			for _, r := range releases {
				resolved, err := m.Resolve(ctx, library.ReleaseName(r.Name), 0)
				if err != nil {
					if !errors.Is(err, identity.ErrInvalidName) {
						log.Warnw("failed to resolve release", "file", r.Path, zap.Error(err))
					}
					fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\n", r.Path, r.HumanSize())
					continue
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", r.Path, r.HumanSize(), resolved.SeriesName,
					seasonString(resolved.Season), episodeString(resolved), showString(resolved.ShowID))
			}
			w.Flush()
		})
	},
}

func seasonString(season *int32) string {
	if season == nil {
		return "-"
	}
	return fmt.Sprint(*season)
}

func episodeString(r *identity.Resolution) string {
	if len(r.AbsoluteNumbers) > 0 {
		return fmt.Sprintf("abs %v", r.AbsoluteNumbers)
	}
	if len(r.Episodes) == 0 {
		return "-"
	}
	return fmt.Sprint(r.Episodes)
}

func showString(id int64) string {
	if id == 0 {
		return "-"
	}
	return fmt.Sprint(id)
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
