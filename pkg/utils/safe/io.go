package safe

import (
	"errors"
	"io"
	"log/slog"

	"github.com/m-mizutani/octosched/pkg/utils/logging"
)

// Close closes the resource and logs the error, if any. io.EOF is not reported.
func Close(closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.Default().Warn("Fail to close resource", slog.Any("error", err))
	}
}
