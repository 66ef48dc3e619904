package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"narya/internal"
)

var (
	baseFlag      string
	yearStartFlag int
	yearEndFlag   int
	dryRunFlag    bool
	useExifTool   bool
)

var renameCmd = &cobra.Command{
	Use:   "rename [folder]",
	Short: "Rename media files to chronological names",
	Long: `Rename walks a directory tree and gives every supported media file a
deterministic, chronologically sortable name derived from its date taken
(EXIF tags, container metadata, or OS timestamps as a last resort).
Simultaneous captures get -NN order suffixes and name collisions get a
per-batch sequence suffix. Without an argument the configured year folders
under the base path are processed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := internal.LoadConfig()
		if err != nil {
			return err
		}
		if baseFlag != "" {
			conf.Base = baseFlag
		}
		if yearStartFlag != 0 {
			conf.YearStart = yearStartFlag
		}
		if yearEndFlag != 0 {
			conf.YearEnd = yearEndFlag
		}
		if useExifTool {
			conf.UseExiftool = true
		}

		folders, err := renameTargets(args, conf)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(conf.LogDir, 0755); err != nil {
			return fmt.Errorf("failed to create log dir: %w", err)
		}
		logName := "narya-" + time.Now().Format("20060102") + ".log"
		logger, err := internal.NewLogger(filepath.Join(conf.LogDir, logName))
		if err != nil {
			return err
		}
		defer logger.Close()
		logger.EchoTo(os.Stdout)

		session, err := internal.NewRenameSession(conf.LogDir)
		if err != nil {
			return err
		}
		defer session.Close()

		extractor := internal.NewDateExtractor(conf.UseExiftool)
		defer extractor.Close()

		if dryRunFlag {
			logger.Log("Dry run mode: no files will be renamed")
		}

		sink := internal.FanoutSink{internal.NewLogSink(logger), session}
		pipeline := internal.NewPipeline(extractor, sink, conf.Extensions, dryRunFlag)

		for _, folder := range folders {
			info, err := os.Stat(folder)
			if err != nil || !info.IsDir() {
				logger.Error("skipping %s: not a directory", folder)
				continue
			}
			if err := session.LogSessionStart(folder); err != nil {
				return err
			}
			if err := pipeline.Run(folder); err != nil {
				return err
			}
		}

		if err := session.LogSessionEnd(); err != nil {
			return err
		}
		fmt.Println(renderSummaryTable(pipeline.Summary()))
		return nil
	},
}

// renameTargets resolves the folders to process: the explicit argument, the
// configured year folders under base, or the base itself.
func renameTargets(args []string, conf *internal.Config) ([]string, error) {
	if len(args) == 1 {
		return []string{args[0]}, nil
	}
	if conf.YearStart == 0 {
		return []string{conf.Base}, nil
	}
	if conf.YearEnd < conf.YearStart {
		return nil, fmt.Errorf("year_end %d precedes year_start %d", conf.YearEnd, conf.YearStart)
	}
	var folders []string
	for year := conf.YearStart; year <= conf.YearEnd; year++ {
		folders = append(folders, filepath.Join(conf.Base, strconv.Itoa(year)))
	}
	return folders, nil
}

func init() {
	renameCmd.Flags().StringVar(&baseFlag, "base", "", "Root media folder")
	renameCmd.Flags().IntVar(&yearStartFlag, "year-start", 0, "First year folder to process")
	renameCmd.Flags().IntVar(&yearEndFlag, "year-end", 0, "Last year folder to process")
	renameCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Show renames without touching files")
	renameCmd.Flags().BoolVar(&useExifTool, "exiftool", false, "Force the exiftool binary for all extraction")

	rootCmd.AddCommand(renameCmd)
}
