package myqueue

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aoigroupbuy/storefront/lib/myhttp"
)

// localTaskQueue dispatches a task by calling its webhook on this same
// process. Delivery is asynchronous and best-effort: a failed dispatch is
// logged and dropped, there is no retry bookkeeping like cloud-tasks has.
type localTaskQueue struct {
}

func init() {
	if os.Getenv("GOOGLE_CLOUD_PROJECT") == "" {
		New = newLocalQueue
	}
}

func newLocalQueue(c context.Context) (TaskQueuer, func(), error) {
	return &localTaskQueue{}, func() {
	}, nil
}

func (q *localTaskQueue) Enqueue(c context.Context, task Task) error {
	url := myhttp.GuessHostnameWithScheme() + task.WebhookURLPath

	go func() {
		// small delay so the enqueueing request can complete first
		time.Sleep(100 * time.Millisecond)

		req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(task.Payload))
		if err != nil {
			log.Printf("error creating task-dispatch request %s: %s", url, err)
			return
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Printf("error dispatching task %s to %s: %s", task.UID, url, err)
			return
		}
		resp.Body.Close()
	}()

	return nil
}

func (q *localTaskQueue) IsLastAttempt(c context.Context, taskUID string) (int32, int32) {
	return 0, 0
}
