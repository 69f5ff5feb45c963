package stderr

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"
)

// forward scans r line by line until EOF, logging each non-blank line and
// offering it to out. Lines are dropped when out is full.
func forward(r io.Reader, out chan<- string, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		log.Warn("stderr", zap.String("line", line))
		select {
		case out <- line:
		default:
			log.Debug("stderr channel full, dropping line")
		}
	}
}
