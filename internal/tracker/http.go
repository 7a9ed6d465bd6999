package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxErrorBody bounds how much of an error response is quoted in errors.
const maxErrorBody = 512

// doJSON executes req and decodes a 2xx JSON body into out. secret is
// scrubbed from any error text.
func doJSON(client *http.Client, req *http.Request, secret string, out any) error {
	resp, err := client.Do(req)
	if err != nil {
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s", ErrTransport, redact(err.Error(), secret))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		_, _ = io.Copy(io.Discard, resp.Body)
		return ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: HTTP %d: %s", ErrTransport, resp.StatusCode, redact(string(body), secret))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrDataShape, err)
	}
	return nil
}

// isCanceled reports whether err stems from run cancellation rather than a
// tracker fault.
func isCanceled(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled)
}
