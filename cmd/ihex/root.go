package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-ihex/ihex"
)

var (
	verbosity    string
	strictEOF    bool
	requireEOF   bool
	maxImageSize int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ihex",
	Short: "Intel HEX parser and memory image dumper",
	Long: `ihex decodes Intel HEX files, validates every record checksum and
reconstructs the flat memory image the records describe.

Data records are placed at their effective address, taking extended
segment and extended linear address records into account. Where records
overlap, the one appearing later in the file wins.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := parseLevel(verbosity)
		if err != nil {
			return err
		}
		logger.level = level
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&verbosity, "verbosity", "v", "warn", "log level: error, warn, info or debug")
	flags.BoolVar(&strictEOF, "strict-eof", false, "reject end of file records that carry data")
	flags.BoolVar(&requireEOF, "require-eof", false, "reject files without an end of file record")
	flags.IntVar(&maxImageSize, "max-image-size", ihex.DefaultMaxImageSize, "largest memory image to build, in bytes (0 for no limit)")
}

// loadFile parses the file at path with the options selected on the command line.
func loadFile(path string) (*ihex.File, error) {
	opts := []ihex.Option{
		ihex.WithLogger(logger),
		ihex.WithMaxImageSize(maxImageSize),
	}
	if strictEOF {
		opts = append(opts, ihex.WithStrictEOF())
	}
	if requireEOF {
		opts = append(opts, ihex.WithRequireEOF())
	}

	logger.Debug("parsing file", "path", path)

	f, err := ihex.ParseFile(path, opts...)
	if err != nil {
		logger.Error("could not parse file", "path", path, "err", err)
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	logger.Info("file parsed successfully", "path", path, "records", len(f.Records))
	return f, nil
}
