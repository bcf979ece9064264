package cmd

import (
	"context"
	"fmt"

	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/names"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

var resolveShowID int64

// resolveCmd parses a release name into show and episode numbers
var resolveCmd = &cobra.Command{
	Use:   "resolve <name>",
	Short: "parse a release name",
	Long:  `parse a release name, optionally as an episode of a known show`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cfg := readConfig()

		ctx := logger.WithCtx(context.Background(), log)
		m, store, err := newManager(ctx, cfg)
		if err != nil {
			log.Fatal("failed to create manager", zap.Error(err))
		}
		defer store.Close()

		resolution, err := m.Resolve(ctx, args[0], resolveShowID)
		if err != nil {
			log.Fatal("failed to resolve name", zap.Error(err))
		}

		if err := printJSON(cmd.OutOrStdout(), resolution); err != nil {
			log.Fatal(err)
		}
	},
}

// matchCmd finds the show a name refers to
var matchCmd = &cobra.Command{
	Use:   "match <name>",
	Short: "find the show a name refers to",
	Long:  `find the show a name refers to by canonical name, scene exceptions and stored names`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()
		cfg := readConfig()

		ctx := logger.WithCtx(context.Background(), log)
		m, store, err := newManager(ctx, cfg)
		if err != nil {
			log.Fatal("failed to create manager", zap.Error(err))
		}
		defer store.Close()

		match, err := m.Match(ctx, args[0])
		if err != nil {
			log.Fatal("failed to match name", zap.Error(err))
		}

		if match.ID == 0 {
			log.Infow("no show matched", "name", args[0])
		}

		if err := printJSON(cmd.OutOrStdout(), match); err != nil {
			log.Fatal(err)
		}
	},
}

// sceneNameCmd prints the scene form of a show name
var sceneNameCmd = &cobra.Command{
	Use:   "scene-name <name>",
	Short: "print the scene version of a show name",
	Long:  `print the scene version of a show name`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		fmt.Fprintln(cmd.OutOrStdout(), names.SceneSanitize(args[0], cfg.Resolver.Ezrss))
	},
}

func init() {
	resolveCmd.Flags().Int64VarP(&resolveShowID, "show", "s", 0, "id of the show the name belongs to")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(sceneNameCmd)
}
