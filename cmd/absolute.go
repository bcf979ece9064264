package cmd

import (
	"context"
	"strconv"

	"github.com/kasuboski/sceneid/pkg/logger"
	"go.uber.org/zap"

	"github.com/spf13/cobra"
)

// absoluteCmd maps absolute episode numbers to a season and episodes
var absoluteCmd = &cobra.Command{
	Use:   "absolute <showID> <number>...",
	Short: "convert absolute numbers to season and episodes",
	Long:  `convert absolute episode numbers of an anime show to a season and episode numbers`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		showID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatal("invalid show id", zap.String("id", args[0]))
		}

		numbers := make([]int32, 0, len(args)-1)
		for _, arg := range args[1:] {
			n, err := strconv.ParseInt(arg, 10, 32)
			if err != nil {
				log.Fatal("invalid absolute number", zap.String("number", arg))
			}
			numbers = append(numbers, int32(n))
		}

		cfg := readConfig()
		ctx := logger.WithCtx(context.Background(), log)
		m, store, err := newManager(ctx, cfg)
		if err != nil {
			log.Fatal("failed to create manager", zap.Error(err))
		}
		defer store.Close()

		result, err := m.ResolveAbsolute(ctx, showID, numbers)
		if err != nil {
			log.Fatal("failed to resolve absolute numbers", zap.Error(err))
		}

		if err := printJSON(cmd.OutOrStdout(), result); err != nil {
			log.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(absoluteCmd)
}
