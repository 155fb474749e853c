package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/moffa90/go-ihex/dump"
	"github.com/moffa90/go-ihex/ihex"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info FILE",
	Short: "Summarize an Intel HEX file",
	Long: `Info prints the file type (8-bit, 16-bit or 32-bit), the start address,
the number of records of each type, the memory image size and a farmhash
fingerprint of the image. Two files with the same fingerprint produce the
same bindump output.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := loadFile(args[0])
		if err != nil {
			return err
		}

		s, err := dump.Summarize(f)
		if err != nil {
			return err
		}

		return writeSummary(cmd.OutOrStdout(), s)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func writeSummary(w io.Writer, s dump.Summary) error {
	types := make([]ihex.RecordType, 0, len(s.Counts))
	for t := range s.Counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	_, err := fmt.Fprintf(w, "File type:     %s\n"+
		"Start address: %s\n"+
		"Records:       %d\n",
		s.Type, s.StartString(), s.Records)
	if err != nil {
		return err
	}
	for _, t := range types {
		if _, err := fmt.Fprintf(w, "  %-26s %d\n", t.String()+":", s.Counts[t]); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintf(w, "Data bytes:    %d\n"+
		"Image size:    %d (0x%X)\n"+
		"Fingerprint:   %016x\n",
		s.DataBytes, s.ImageSize, s.ImageSize, s.Fingerprint)
	return err
}
