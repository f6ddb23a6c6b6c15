package main

import (
	"os"
	"strings"

	"slipbox/internal/cli"
)

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// rewriteCodecShortcutArgs lets `slipbox 2c12` mean `slipbox decode 2c12` and
// `slipbox 2.3.12` mean `slipbox encode 2.3.12`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Persistent flags may come first, so we look for the first
// positional token rather than argv[1].
func rewriteCodecShortcutArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--count":      true,
		"--seed":       true,
		"--weighting":  true,
		"--labels":     true,
		"--format":     true,
		"--display":    true,
		"--log-level":  true,
		"--log-format": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" || a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++ // skip value
			}
			continue
		}

		if !startsWithDigit(a) {
			return argv
		}
		sub := "decode"
		if strings.Contains(a, ".") {
			sub = "encode"
		}
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:i]...)
		out = append(out, sub)
		out = append(out, argv[i:]...)
		return out
	}
	return argv
}

func main() {
	os.Args = rewriteCodecShortcutArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
