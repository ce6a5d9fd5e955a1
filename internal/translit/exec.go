package translit

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultBinary is the external converter invoked when none is
// configured.
const DefaultBinary = "aksharamukha"

// CommandProcess adapts an external conversion command into a
// ProcessFunc. The command is invoked as `binary <from> <to>` with the
// text on stdin and must print the converted text on stdout. Slow or
// wedged invocations are cut off rather than stalling a whole locale.
func CommandProcess(binary string) ProcessFunc {
	if binary == "" {
		binary = DefaultBinary
	}
	return func(from, to, text string) (string, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		cmd := exec.CommandContext(ctx, binary, from, to)
		cmd.Stdin = strings.NewReader(text)
		cmd.WaitDelay = 5 * time.Second
		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			return "", fmt.Errorf("%s failed: %w: %s", binary, err, strings.TrimSpace(stderr.String()))
		}
		return strings.TrimSuffix(stdout.String(), "\n"), nil
	}
}
