// Package dump writes the memory image of a parsed Intel HEX file.
//
// # Overview
//
// A Dumper takes an *ihex.File, flattens it and writes the result either as raw bytes or as a
// human-readable hexdump. Writes happen in chunks so long outputs can report progress and be
// cancelled through the context.
//
// # Basic Usage
//
//	f, err := ihex.ParseFile("firmware.hex")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	d := dump.New(os.Stdout)
//	if err := d.Hex(context.Background(), f); err != nil {
//	    log.Fatal(err)
//	}
//
// # Address Widths
//
// Files using extended segment or linear address records can place data far from address
// zero, which makes the flattened image large. Consumers that only handle small images can
// refuse such files up front instead of truncating them:
//
//	d := dump.New(w, dump.WithMaxFileType(ihex.Type8Bit))
//	err := d.Binary(ctx, f) // *UnsupportedFileTypeError for 16-bit and 32-bit files
//
// # Progress Tracking
//
//	d := dump.New(w,
//	    dump.WithProgressCallback(func(p dump.Progress) {
//	        fmt.Fprintf(os.Stderr, "[%s] %.1f%%\n", p.Phase, p.Percentage)
//	    }),
//	)
//
// # Summaries
//
// Summarize reports record counts, the file type, the start address and a fingerprint of the
// memory image, which is handy for comparing two builds of the same firmware.
package dump
