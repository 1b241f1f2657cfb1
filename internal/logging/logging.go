// Package logging builds the logfmt logger shared by every component.
package logging

import (
	"fmt"
	"io"
	"strings"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// ParseLevel maps a level name to a filter option.
func ParseLevel(name string) (level.Option, error) {
	switch strings.ToLower(name) {
	case "debug":
		return level.AllowDebug(), nil
	case "", "info":
		return level.AllowInfo(), nil
	case "warn", "warning":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none":
		return level.AllowNone(), nil
	}
	return nil, fmt.Errorf("unknown log level %q", name)
}

// New returns a timestamped logfmt logger on w filtered at levelName.
func New(w io.Writer, levelName string) (kitlog.Logger, error) {
	allow, err := ParseLevel(levelName)
	if err != nil {
		return nil, err
	}
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	return level.NewFilter(logger, allow), nil
}
