package main

import (
	"bufio"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-ihex/dump"
)

var hexdumpWidth int

// hexdumpCmd represents the hexdump command
var hexdumpCmd = &cobra.Command{
	Use:   "hexdump FILE",
	Short: "Print a hexdump of the memory image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFile(args[0])
		if err != nil {
			return err
		}

		w := bufio.NewWriter(cmd.OutOrStdout())
		d := dump.New(w,
			dump.WithLogger(logger),
			dump.WithBytesPerLine(hexdumpWidth),
		)
		if err := d.Hex(cmd.Context(), f); err != nil {
			return err
		}
		return w.Flush()
	},
}

func init() {
	hexdumpCmd.Flags().IntVarP(&hexdumpWidth, "width", "w", 16, "bytes per line")
	rootCmd.AddCommand(hexdumpCmd)
}
