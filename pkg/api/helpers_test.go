package api_test

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/cipherkit/pkg/api"
	"github.com/dmitrymomot/cipherkit/pkg/logger"
)

func newJSONLogger(w io.Writer) *slog.Logger {
	return logger.New(
		logger.WithOutput(w),
		logger.WithFormat(logger.FormatJSON),
		logger.WithContextExtractors(api.RequestIDExtractor()),
	)
}
