package sheetdb

import (
	"context"
	"errors"
	"net"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/Pleasure08/gplsmarthubb/internal/store"
)

// ErrTabNotFound is returned by Document.Tab when no sheet carries the
// requested title. The caller decides whether to create it.
var ErrTabNotFound = errors.New("sheetdb: tab not found")

// classify maps Google API failures onto the shared store taxonomy so the
// caller can produce an actionable message: credential rejections become
// AuthError, missing documents become ErrNotFound, rate limits and server
// errors become retryable TransientError.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == 401 || gerr.Code == 403:
			return &store.AuthError{Reason: "spreadsheet service rejected credentials (check the service account has access)", Err: err}
		case gerr.Code == 404:
			return store.ErrNotFound
		case gerr.Code == 429 || gerr.Code >= 500:
			return &store.TransientError{Err: err}
		}
		return err
	}
	// Token exchange failures (invalid_grant on a bad or revoked key)
	// come back as oauth2.RetrieveError, not googleapi.Error.
	var terr *oauth2.RetrieveError
	if errors.As(err, &terr) {
		return &store.AuthError{Reason: "token request rejected (check the service account key)", Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &store.TransientError{Err: err}
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return &store.TransientError{Err: err}
	}
	return err
}
