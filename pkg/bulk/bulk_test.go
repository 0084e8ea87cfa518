package bulk

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient answers the submit mutation once, then plays back poll
// responses in order, repeating the last one.
type scriptedClient struct {
	submitBody string
	pollBodies []string
	polls      int
	documents  []string
}

func (c *scriptedClient) Execute(_ context.Context, document string, _ interface{}) ([]byte, error) {
	c.documents = append(c.documents, document)
	if strings.Contains(document, "bulkOperationRunQuery") {
		return []byte(c.submitBody), nil
	}
	body := c.pollBodies[c.polls]
	if c.polls < len(c.pollBodies)-1 {
		c.polls++
	}
	return []byte(body), nil
}

func submitOK() string {
	return `{"data": {"bulkOperationRunQuery": {"bulkOperation": {"id": "gid://shopify/BulkOperation/1", "status": "CREATED"}, "userErrors": []}}}`
}

func pollBody(status Status, url string) string {
	return fmt.Sprintf(`{"data": {"currentBulkOperation": {"id": "gid://shopify/BulkOperation/1", "status": %q, "errorCode": null, "objectCount": "3", "url": %q}}}`, status, url)
}

func newTestRunner(client *scriptedClient) *Runner {
	return NewRunner(client,
		WithPollInterval(time.Millisecond),
		WithTimeout(time.Second),
	)
}

func TestRunDownloadsResult(t *testing.T) {
	const jsonl = `{"id":"gid://shopify/Order/1"}` + "\n" + `{"id":"gid://shopify/Order/2"}` + "\n"
	files := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(jsonl))
	}))
	defer files.Close()

	client := &scriptedClient{
		submitBody: submitOK(),
		pollBodies: []string{
			pollBody(StatusRunning, ""),
			pollBody(StatusRunning, ""),
			pollBody(StatusCompleted, files.URL+"/export.jsonl"),
		},
	}
	runner := newTestRunner(client)

	var dest bytes.Buffer
	err := runner.Run(context.Background(), `{orders {edges {node {id}}}}`, &dest)
	require.NoError(t, err)
	assert.Equal(t, jsonl, dest.String())

	require.NotEmpty(t, client.documents)
	assert.Contains(t, client.documents[0], `bulkOperationRunQuery(query: """{orders {edges {node {id}}}}""")`)
}

func TestRunFailedOperation(t *testing.T) {
	client := &scriptedClient{
		submitBody: submitOK(),
		pollBodies: []string{
			`{"data": {"currentBulkOperation": {"id": "gid://shopify/BulkOperation/1", "status": "FAILED", "errorCode": "ACCESS_DENIED", "url": null}}}`,
		},
	}
	runner := newTestRunner(client)

	err := runner.Run(context.Background(), `{orders {edges {node {id}}}}`, &bytes.Buffer{})
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, StatusFailed, opErr.Status)
	assert.Equal(t, "ACCESS_DENIED", opErr.Code)
}

func TestRunCanceledOperation(t *testing.T) {
	client := &scriptedClient{
		submitBody: submitOK(),
		pollBodies: []string{pollBody(StatusCanceled, "")},
	}
	runner := newTestRunner(client)

	err := runner.Run(context.Background(), `{orders {edges {node {id}}}}`, &bytes.Buffer{})
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, StatusCanceled, opErr.Status)
}

func TestRunTimeout(t *testing.T) {
	client := &scriptedClient{
		submitBody: submitOK(),
		pollBodies: []string{pollBody(StatusRunning, "")},
	}
	runner := NewRunner(client,
		WithPollInterval(time.Millisecond),
		WithTimeout(10*time.Millisecond),
	)

	err := runner.Run(context.Background(), `{orders {edges {node {id}}}}`, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestRunRejectedSubmission(t *testing.T) {
	client := &scriptedClient{
		submitBody: `{"data": {"bulkOperationRunQuery": {"bulkOperation": null, "userErrors": [{"field": ["query"], "message": "A bulk query operation is already in progress"}]}}}`,
	}
	runner := newTestRunner(client)

	err := runner.Run(context.Background(), `{orders {edges {node {id}}}}`, &bytes.Buffer{})
	var userErr *UserErrorsError
	require.ErrorAs(t, err, &userErr)
	assert.Contains(t, userErr.Errors, "already in progress")
	assert.Equal(t, 0, client.polls)
}

func TestRunContextCancellation(t *testing.T) {
	client := &scriptedClient{
		submitBody: submitOK(),
		pollBodies: []string{pollBody(StatusRunning, "")},
	}
	runner := NewRunner(client,
		WithPollInterval(time.Second),
		WithTimeout(time.Minute),
	)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := runner.Run(ctx, `{orders {edges {node {id}}}}`, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPoll(t *testing.T) {
	client := &scriptedClient{
		pollBodies: []string{pollBody(StatusRunning, "")},
	}
	runner := newTestRunner(client)

	operation, err := runner.Poll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/BulkOperation/1", operation.ID)
	assert.Equal(t, StatusRunning, operation.Status)
	assert.Equal(t, int64(3), operation.ObjectCount)
}
