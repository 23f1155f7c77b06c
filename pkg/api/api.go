package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/absmach/fedavg/pkg/fl"
	"github.com/absmach/supermq"
	apiutil "github.com/absmach/supermq/api/http/util"
)

const (
	ContentType     = "application/json"
	CBORContentType = "application/cbor"
)

// ErrRequestTooLarge indicates the request body exceeded the server limit.
var ErrRequestTooLarge = errors.New("request body too large")

type errorRes struct {
	Err string `json:"error"`
}

func EncodeResponse(_ context.Context, w http.ResponseWriter, response any) error {
	ar, ok := response.(supermq.Response)
	if ok && ar.Empty() {
		setHeaders(w, ar)
		w.WriteHeader(ar.Code())

		return nil
	}

	// The status is written only once the body has encoded.
	body, err := json.Marshal(response)
	if err != nil {
		return err
	}
	if ok {
		setHeaders(w, ar)
		w.WriteHeader(ar.Code())
	}
	_, err = w.Write(append(body, '\n'))

	return err
}

func setHeaders(w http.ResponseWriter, ar supermq.Response) {
	for k, v := range ar.Headers() {
		w.Header().Set(k, v)
	}
	w.Header().Set("Content-Type", ContentType)
}

func EncodeError(_ context.Context, err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", ContentType)
	switch {
	case errors.Is(err, apiutil.ErrUnsupportedContentType):
		w.WriteHeader(http.StatusUnsupportedMediaType)
	case errors.Is(err, fl.ErrInvalidInput),
		errors.Is(err, fl.ErrKeyMismatch),
		errors.Is(err, fl.ErrShapeMismatch),
		errors.Is(err, fl.ErrRoundMismatch):
		w.WriteHeader(http.StatusUnprocessableEntity)
	case errors.Is(err, ErrRequestTooLarge):
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	case errors.Is(err, apiutil.ErrValidation):
		w.WriteHeader(http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}

	if err := json.NewEncoder(w).Encode(errorRes{Err: err.Error()}); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
}
