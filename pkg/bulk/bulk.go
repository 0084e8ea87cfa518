// Package bulk runs server-side bulk query exports: submit the operation,
// poll until it settles, download the newline delimited JSON result.
package bulk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jensneuse/abstractlogger"
	"github.com/tidwall/gjson"

	"github.com/mericlorris-hash/vanilio/pkg/connection"
)

type Status string

const (
	StatusCreated   Status = "CREATED"
	StatusRunning   Status = "RUNNING"
	StatusCompleted Status = "COMPLETED"
	StatusFailed    Status = "FAILED"
	StatusCanceled  Status = "CANCELED"
)

const (
	DefaultPollInterval = 10 * time.Second
	DefaultTimeout      = 10 * time.Minute
)

// ErrTimeout reports that the operation did not settle inside the configured
// wall-clock bound. It is distinct from an API-reported failure.
var ErrTimeout = errors.New("bulk: operation did not complete in time")

// OperationError is a FAILED or CANCELED operation, carrying the error code
// the API reported.
type OperationError struct {
	Status Status
	Code   string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("bulk: operation %s: %s", strings.ToLower(string(e.Status)), e.Code)
}

// UserErrorsError is a rejected submission.
type UserErrorsError struct {
	Errors string
}

func (e *UserErrorsError) Error() string {
	return fmt.Sprintf("bulk: submission rejected: %s", e.Errors)
}

// Operation is the state of the shop's current bulk operation.
type Operation struct {
	ID          string
	Status      Status
	ErrorCode   string
	ObjectCount int64
	URL         string
}

type Runner struct {
	client       connection.Client
	download     *http.Client
	log          abstractlogger.Logger
	pollInterval time.Duration
	timeout      time.Duration
}

type Option func(*Runner)

func WithLogger(log abstractlogger.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

func WithDownloadClient(download *http.Client) Option {
	return func(r *Runner) {
		r.download = download
	}
}

func WithPollInterval(interval time.Duration) Option {
	return func(r *Runner) {
		r.pollInterval = interval
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(r *Runner) {
		r.timeout = timeout
	}
}

func NewRunner(client connection.Client, options ...Option) *Runner {
	r := &Runner{
		client:       client,
		download:     http.DefaultClient,
		log:          abstractlogger.NoopLogger,
		pollInterval: DefaultPollInterval,
		timeout:      DefaultTimeout,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

const statusQuery = `{currentBulkOperation {id status errorCode objectCount fileSize url createdAt completedAt}}`

// Run submits innerQuery as a bulk operation, polls at the configured
// interval until it settles and streams the JSONL result into dest. The poll
// loop blocks the calling goroutine for up to the configured timeout; wrap
// ctx for cooperative cancellation.
func (r *Runner) Run(ctx context.Context, innerQuery string, dest io.Writer) error {
	if err := r.submit(ctx, innerQuery); err != nil {
		return err
	}
	operation, err := r.await(ctx)
	if err != nil {
		return err
	}
	return r.downloadResult(ctx, operation.URL, dest)
}

func (r *Runner) submit(ctx context.Context, innerQuery string) error {
	mutation := fmt.Sprintf(`mutation {bulkOperationRunQuery(query: """%s""") {bulkOperation {id status} userErrors {field message}}}`, innerQuery)
	body, err := r.client.Execute(ctx, mutation, nil)
	if err != nil {
		return err
	}
	userErrors := gjson.GetBytes(body, "data.bulkOperationRunQuery.userErrors")
	if userErrors.IsArray() && len(userErrors.Array()) != 0 {
		return &UserErrorsError{Errors: userErrors.Raw}
	}
	r.log.Info("bulk: operation submitted",
		abstractlogger.String("id", gjson.GetBytes(body, "data.bulkOperationRunQuery.bulkOperation.id").String()),
	)
	return nil
}

// await polls currentBulkOperation until COMPLETED, FAILED or CANCELED, or
// the wall-clock timeout elapses.
func (r *Runner) await(ctx context.Context) (Operation, error) {
	deadline := time.Now().Add(r.timeout)
	for time.Now().Before(deadline) {
		operation, err := r.Poll(ctx)
		if err != nil {
			return Operation{}, err
		}
		r.log.Debug("bulk: polled operation",
			abstractlogger.String("id", operation.ID),
			abstractlogger.String("status", string(operation.Status)),
		)
		switch operation.Status {
		case StatusCompleted:
			return operation, nil
		case StatusFailed, StatusCanceled:
			return Operation{}, &OperationError{Status: operation.Status, Code: operation.ErrorCode}
		}
		select {
		case <-ctx.Done():
			return Operation{}, ctx.Err()
		case <-time.After(r.pollInterval):
		}
	}
	return Operation{}, ErrTimeout
}

// Poll fetches the shop's current bulk operation state once.
func (r *Runner) Poll(ctx context.Context) (Operation, error) {
	body, err := r.client.Execute(ctx, statusQuery, nil)
	if err != nil {
		return Operation{}, err
	}
	op := gjson.GetBytes(body, "data.currentBulkOperation")
	return Operation{
		ID:          op.Get("id").String(),
		Status:      Status(op.Get("status").String()),
		ErrorCode:   op.Get("errorCode").String(),
		ObjectCount: op.Get("objectCount").Int(),
		URL:         op.Get("url").String(),
	}, nil
}

func (r *Runner) downloadResult(ctx context.Context, url string, dest io.Writer) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	response, err := r.download.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("bulk: download failed with status %s", response.Status)
	}
	_, err = io.Copy(dest, response.Body)
	return err
}
