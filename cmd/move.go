package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"narya/internal"
)

var moveDryRunFlag bool

var moveCmd = &cobra.Command{
	Use:   "move [source] [dest]",
	Short: "Move misplaced media files into a holding folder",
	Long: `Move walks the source tree and relocates media files whose name prefix
does not match their parent directory (a 2019 photo sitting in a 2020
folder) into a flat holding directory for manual sorting. Source and dest
default to the configured base and holding paths.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := internal.LoadConfig()
		if err != nil {
			return err
		}
		source := conf.Base
		dest := conf.Holding
		if len(args) >= 1 {
			source = args[0]
		}
		if len(args) == 2 {
			dest = args[1]
		}

		info, err := os.Stat(source)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("source does not exist or is not a directory: %s", source)
		}

		if err := os.MkdirAll(conf.LogDir, 0755); err != nil {
			return fmt.Errorf("failed to create log dir: %w", err)
		}
		logName := "narya-move-" + time.Now().Format("20060102") + ".log"
		logger, err := internal.NewLogger(filepath.Join(conf.LogDir, logName))
		if err != nil {
			return err
		}
		defer logger.Close()
		logger.EchoTo(os.Stdout)

		moved, err := internal.MoveMisplaced(source, dest, conf.Extensions, moveDryRunFlag, logger)
		if err != nil {
			return err
		}
		logger.Log("%d files moved to %s", moved, dest)
		return nil
	},
}

func init() {
	moveCmd.Flags().BoolVar(&moveDryRunFlag, "dry-run", false, "Show moves without touching files")

	rootCmd.AddCommand(moveCmd)
}
