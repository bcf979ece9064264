package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/manager"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

var (
	addShow    manager.AddShowRequest
	addEpisode manager.AddEpisodeRequest
	absolute   int32
)

// showCmd groups the commands that manage stored shows
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "manage stored shows",
	Long:  `manage the shows, episodes and scene exceptions names are resolved against`,
}

var showAddCmd = &cobra.Command{
	Use:   "add",
	Short: "store a show",
	Run: func(cmd *cobra.Command, args []string) {
		withManager(func(ctx context.Context, m manager.IdentityManager) {
			id, err := m.AddShow(ctx, addShow)
			if err != nil {
				logger.Get().Fatal("failed to add show", zap.Error(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added show %d\n", id)
		})
	},
}

var showListCmd = &cobra.Command{
	Use:   "list",
	Short: "list stored shows",
	Run: func(cmd *cobra.Command, args []string) {
		withManager(func(ctx context.Context, m manager.IdentityManager) {
			shows, err := m.ListShows(ctx)
			if err != nil {
				logger.Get().Fatal("failed to list shows", zap.Error(err))
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tANIME\tEPISODES\tALIASES\tADDED")
			for _, s := range shows {
				added := "-"
				if s.Added != nil {
					added = humanize.Time(*s.Added)
				}
				fmt.Fprintf(w, "%d\t%s\t%t\t%s\t%s\t%s\n",
					s.ID, s.Name, s.Anime, humanize.Comma(int64(s.Episodes)), strings.Join(s.Aliases, ", "), added)
			}
			w.Flush()

			total := lo.SumBy(shows, func(s manager.ShowSummary) int { return s.Episodes })
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s shows, %s episodes\n", humanize.Comma(int64(len(shows))), humanize.Comma(int64(total)))
		})
	},
}

var showAliasCmd = &cobra.Command{
	Use:   "alias <showID> <name>",
	Short: "add a scene exception name to a show",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		showID := parseShowID(args[0])
		withManager(func(ctx context.Context, m manager.IdentityManager) {
			_, err := m.AddAlias(ctx, manager.AddAliasRequest{ShowID: showID, Name: args[1]})
			if err != nil {
				logger.Get().Fatal("failed to add alias", zap.Error(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %q to show %d\n", args[1], showID)
		})
	},
}

var showEpisodeCmd = &cobra.Command{
	Use:   "episode <showID>",
	Short: "add an episode to a show",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		addEpisode.ShowID = parseShowID(args[0])
		if cmd.Flags().Changed("absolute") {
			addEpisode.AbsoluteNumber = lo.ToPtr(absolute)
		}

		withManager(func(ctx context.Context, m manager.IdentityManager) {
			_, err := m.AddEpisode(ctx, addEpisode)
			if err != nil {
				logger.Get().Fatal("failed to add episode", zap.Error(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added S%02dE%02d to show %d\n", addEpisode.Season, addEpisode.Episode, addEpisode.ShowID)
		})
	},
}

var showAnimeCmd = &cobra.Command{
	Use:   "anime <showID> [true|false]",
	Short: "show or set whether a show is anime",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		showID := parseShowID(args[0])
		withManager(func(ctx context.Context, m manager.IdentityManager) {
			log := logger.Get()

			if len(args) == 2 {
				anime, err := strconv.ParseBool(args[1])
				if err != nil {
					log.Fatal("invalid anime flag", zap.String("value", args[1]))
				}
				if err := m.SetAnime(ctx, showID, anime); err != nil {
					log.Fatal("failed to set anime", zap.Error(err))
				}
			}

			anime, err := m.IsAnime(ctx, showID)
			if err != nil {
				log.Fatal("failed to read anime flag", zap.Error(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "show %d anime: %t\n", showID, anime)
		})
	},
}

var showDeleteCmd = &cobra.Command{
	Use:   "delete <showID>",
	Short: "remove a show with its episodes and aliases",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		showID := parseShowID(args[0])
		withManager(func(ctx context.Context, m manager.IdentityManager) {
			if err := m.DeleteShow(ctx, showID); err != nil {
				logger.Get().Fatal("failed to delete show", zap.Error(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted show %d\n", showID)
		})
	},
}

// withManager runs fn with a manager built from the configuration
func withManager(fn func(ctx context.Context, m manager.IdentityManager)) {
	log := logger.Get()
	cfg := readConfig()

	ctx := logger.WithCtx(context.Background(), log)
	m, store, err := newManager(ctx, cfg)
	if err != nil {
		log.Fatal("failed to create manager", zap.Error(err))
	}
	defer store.Close()

	fn(ctx, m)
}

func parseShowID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logger.Get().Fatal("invalid show id", zap.String("id", raw))
	}
	return id
}

func init() {
	showAddCmd.Flags().Int64VarP(&addShow.ID, "id", "i", 0, "show id")
	showAddCmd.Flags().Int64Var(&addShow.AltID, "alt-id", 0, "secondary show id")
	showAddCmd.Flags().StringVarP(&addShow.Name, "name", "n", "", "show name")
	showAddCmd.Flags().StringVar(&addShow.AltName, "alt-name", "", "secondary show name")
	showAddCmd.Flags().BoolVar(&addShow.Anime, "anime", false, "show uses absolute numbering")
	showAddCmd.Flags().Int32VarP(&addShow.StartYear, "year", "y", 0, "year the show started")
	showAddCmd.MarkFlagRequired("id")
	showAddCmd.MarkFlagRequired("name")

	showEpisodeCmd.Flags().Int32VarP(&addEpisode.Season, "season", "s", 0, "season number")
	showEpisodeCmd.Flags().Int32VarP(&addEpisode.Episode, "episode", "e", 0, "episode number")
	showEpisodeCmd.Flags().Int32VarP(&absolute, "absolute", "a", 0, "absolute episode number")
	showEpisodeCmd.MarkFlagRequired("episode")

	showCmd.AddCommand(showAddCmd, showListCmd, showAliasCmd, showEpisodeCmd, showAnimeCmd, showDeleteCmd)
	rootCmd.AddCommand(showCmd)
}
