// Command ihex inspects Intel HEX files and dumps the memory image they describe.
//
// Usage:
//
//	ihex records firmware.hex        list every record
//	ihex info firmware.hex           file type, start address and image fingerprint
//	ihex hexdump firmware.hex        hexdump of the memory image
//	ihex bindump firmware.hex -o fw.bin
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
