// Command vicli is an interactive terminal harness for the engine: it
// reads stdin one byte at a time and echoes the live preedit back to
// the terminal, the way a real input-method frontend would.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/username/goviet-ime/internal/engine"
)

func main() {
	mode := flag.String("mode", "telex", "input method: telex|vni")
	flag.Parse()

	var methodName string
	switch *mode {
	case "telex":
		methodName = "Telex"
	case "vni":
		methodName = "VNI"
	default:
		fmt.Fprintf(os.Stderr, "Unsupported mode: %s (use telex|vni)\n", *mode)
		os.Exit(1)
	}

	eng := engine.NewConfiguredEngine(&engine.EngineConfig{InputMethodName: methodName})

	reader := bufio.NewReader(os.Stdin)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			return
		}

		if b == '\n' {
			out := eng.Feed(' ')
			fmt.Printf("\n%s", string(out))
			continue
		}

		if b == 3 {
			return
		}

		out := eng.Feed(rune(b))
		fmt.Printf("\r%s", string(out))
	}
}
