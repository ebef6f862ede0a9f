package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ZeeshanKhalid2k01/youtube-tracking/internal/errs"
)

// Channel is one tracked content channel: display name plus the external
// channel identifier. The list is static for the lifetime of a run.
type Channel struct {
	Name string
	ID   string
}

// ParseChannels reads a channel list in "name,channel_id" form, one channel
// per line. Blank lines are skipped. Commas inside names are not supported;
// a line with the wrong field count is a format error.
func ParseChannels(r io.Reader) ([]Channel, error) {
	scanner := bufio.NewScanner(r)
	channels := make([]Channel, 0, 8)
	seen := make(map[string]struct{})
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 2 {
			return nil, fmt.Errorf("channels line %d: want \"name,channel_id\", got %q", lineNo, line)
		}

		name := strings.TrimSpace(fields[0])
		id := strings.TrimSpace(fields[1])
		if name == "" || id == "" {
			return nil, fmt.Errorf("channels line %d: empty name or id", lineNo)
		}
		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf("channels line %d: duplicate channel name %q", lineNo, name)
		}
		seen[name] = struct{}{}

		channels = append(channels, Channel{Name: name, ID: id})
	}

	if err := scanner.Err(); err != nil {
		return nil, errs.Wrap(err, "read channels list")
	}
	return channels, nil
}
