package reply

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"dealfinder/pkg/contextx"
	"dealfinder/pkg/errcodes"
	"dealfinder/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

// codedError is satisfied by domain errors that know which code and
// user-facing message they map to.
type codedError interface {
	error
	ErrorCode() errcodes.ErrorCode
	Description() string
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

func HTML(ctx context.Context, w http.ResponseWriter, statusCode int, page string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if _, err := w.Write([]byte(page)); err != nil {
		logger(ctx).Error("w.Write", logx.Error(err))
	}
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	logger(ctx).Error("error", logx.Error(err))

	response := errorResponse{
		Code:      errcodes.InternalServerError.String(),
		Message:   "Internal server error",
		SupportID: supportID(ctx),
	}

	var coded codedError
	if !errors.As(err, &coded) {
		JSON(ctx, w, http.StatusInternalServerError, response)

		return
	}

	response.Code = coded.ErrorCode().String()
	response.Message = coded.Description()

	JSON(ctx, w, errcodes.HTTPStatus(coded.ErrorCode()), response)
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
