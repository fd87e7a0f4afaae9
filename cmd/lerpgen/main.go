// Command lerpgen generates element-wise Lerp methods for Go types.
package main

import (
	"fmt"
	"os"

	"github.com/teranos/lerp/cmd/lerpgen/cmd"
	"github.com/teranos/lerp/errors"
)

func main() {
	if err := cmd.NewLerpgenCmd().Execute(); err != nil {
		// diagnostics were already printed
		if !errors.Is(err, errors.ErrGenerationFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if hint := errors.FlattenHints(err); hint != "" {
				fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
			}
		}
		os.Exit(1)
	}
}
