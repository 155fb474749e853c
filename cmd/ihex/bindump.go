package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-ihex/dump"
)

var bindumpOutput string

// bindumpCmd represents the bindump command
var bindumpCmd = &cobra.Command{
	Use:   "bindump FILE",
	Short: "Write the raw memory image",
	Long: `Bindump writes the flattened memory image as raw bytes, starting at
address zero. Bytes not covered by any data record are zero.

The image is written to standard output unless --output is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		f, err := loadFile(args[0])
		if err != nil {
			return err
		}

		var out io.Writer = cmd.OutOrStdout()
		if bindumpOutput != "" && bindumpOutput != "-" {
			file, createErr := os.Create(bindumpOutput)
			if createErr != nil {
				return fmt.Errorf("create output: %w", createErr)
			}
			defer func() {
				if cerr := file.Close(); err == nil && cerr != nil {
					err = fmt.Errorf("close output: %w", cerr)
				}
				// leave no partial image behind
				if err != nil {
					os.Remove(bindumpOutput)
				}
			}()
			out = file
		}

		w := bufio.NewWriter(out)
		d := dump.New(w, dump.WithLogger(logger))
		if err := d.Binary(cmd.Context(), f); err != nil {
			return err
		}
		return w.Flush()
	},
}

func init() {
	bindumpCmd.Flags().StringVarP(&bindumpOutput, "output", "o", "", "write the image to this file instead of standard output")
	rootCmd.AddCommand(bindumpCmd)
}
