package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/kasuboski/sceneid/pkg/logger"
	"github.com/kasuboski/sceneid/pkg/storage/sqlite"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	jet "github.com/go-jet/jet/v2/generator/sqlite"
)

var outputDirectory string

// generateCmd groups code generation commands
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate code",
	Long:  `generate code`,
}

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "generate database code",
	Long:  `generate database code from the migrated schema`,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.Get()

		tmpDir, err := os.MkdirTemp("", "sceneid-schema")
		if err != nil {
			log.Fatal(err)
		}
		defer os.RemoveAll(tmpDir)

		dbPath := filepath.Join(tmpDir, "schema.sqlite")
		tmpStorage, err := sqlite.New(dbPath)
		if err != nil {
			log.Fatal("failed to create database", zap.Error(err))
		}

		if err := tmpStorage.Migrate(context.Background()); err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
		tmpStorage.Close()

		if err := jet.GenerateDSN(dbPath, outputDirectory); err != nil {
			log.Fatal("failed to generate", zap.Error(err))
		}

		log.Infow("successfully generated", "dir", outputDirectory)
	},
}

func init() {
	generateCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(generateCmd)
	schemaCmd.Flags().StringVarP(&outputDirectory, "out", "o", "./pkg/storage/sqlite/schema", "directory to output generated code to")
}
