package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-web-scaffold/internal/web"
)

// Recover converts a panic in any later stage into an error forwarded to the
// error chain, so it is logged and answered like every other failure.
// [http.ErrAbortHandler] is re-raised.
func (h *Handler) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			web.Fail(w, r, &PanicError{Value: rec, Stack: debug.Stack()})
		}()

		next.ServeHTTP(w, r)
	})
}

// PanicError is the error a recovered panic is turned into.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}
