package sqs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// fakeClient is an in-memory SQS stand-in shared by the sender and worker tests
type fakeClient struct {
	mu         sync.Mutex
	sent       []string
	batchCalls int
	urlCalls   int
	entryIDs   []string
	failBodies map[string]bool
	batchErr   error
	queue      []types.Message
	deleted    []string
}

func (c *fakeClient) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	c.mu.Lock()
	c.urlCalls++
	c.mu.Unlock()
	if *params.QueueName == "missing" {
		return nil, errors.New("AWS.SimpleQueueService.NonExistentQueue")
	}
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("https://sqs.local/000000000000/" + *params.QueueName)}, nil
}

func (c *fakeClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sent = append(c.sent, *params.MessageBody)
	return &sqs.SendMessageOutput{MessageId: aws.String("m")}, nil
}

func (c *fakeClient) SendMessageBatch(_ context.Context, params *sqs.SendMessageBatchInput, _ ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batchCalls++
	if c.batchErr != nil {
		return nil, c.batchErr
	}

	output := &sqs.SendMessageBatchOutput{}
	for _, entry := range params.Entries {
		c.entryIDs = append(c.entryIDs, *entry.Id)
		if c.failBodies[*entry.MessageBody] {
			output.Failed = append(output.Failed, types.BatchResultErrorEntry{Id: entry.Id})
			continue
		}
		c.sent = append(c.sent, *entry.MessageBody)
		output.Successful = append(output.Successful, types.SendMessageBatchResultEntry{Id: entry.Id})
	}
	return output, nil
}

func (c *fakeClient) ReceiveMessage(ctx context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	c.mu.Lock()
	messages := c.queue
	c.queue = nil
	c.mu.Unlock()

	if len(messages) == 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(5 * time.Millisecond):
		}
	}
	return &sqs.ReceiveMessageOutput{Messages: messages}, nil
}

func (c *fakeClient) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, *params.ReceiptHandle)
	return &sqs.DeleteMessageOutput{}, nil
}

func (c *fakeClient) deletedHandles() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.deleted...)
}

func TestSendMessageSerializesJSON(t *testing.T) {
	client := &fakeClient{}
	sender := NewSender(client)

	if err := sender.SendMessage(context.Background(), "imports", map[string]string{"city": "Pune"}); err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}
	if len(client.sent) != 1 || client.sent[0] != `{"city":"Pune"}` {
		t.Fatalf("unexpected sent bodies %v", client.sent)
	}

	if err := sender.SendMessage(context.Background(), "missing", "x"); err == nil {
		t.Fatal("expected an error for an unknown queue")
	}
}

func TestSendMessageBatchSplitsInTens(t *testing.T) {
	client := &fakeClient{failBodies: map[string]bool{"3": true}}
	sender := NewSender(client)

	messages := make([]BatchMessage, 25)
	for i := range messages {
		messages[i] = BatchMessage{MessageID: fmt.Sprintf("m-%d", i), Body: i}
	}
	messages[7].Body = func() {}

	result, err := sender.SendMessageBatch(context.Background(), "imports", messages)
	if err != nil {
		t.Fatalf("SendMessageBatch() error = %v", err)
	}
	if client.batchCalls != 3 {
		t.Fatalf("expected 3 batch calls, got %d", client.batchCalls)
	}
	if len(result.Successful) != 23 || len(result.Failed) != 2 {
		t.Fatalf("expected 23 successful and 2 failed, got %d and %d", len(result.Successful), len(result.Failed))
	}
	slices.Sort(result.Failed)
	if !slices.Equal(result.Failed, []string{"m-3", "m-7"}) {
		t.Fatalf("expected m-3 and m-7 to fail, got %v", result.Failed)
	}
}

func TestSendMessageBatchAcceptsAnyCallerID(t *testing.T) {
	client := &fakeClient{}
	sender := NewSender(client)

	messages := []BatchMessage{
		{MessageID: "New York", Body: map[string]string{"city": "New York"}},
		{MessageID: "São Paulo", Body: map[string]string{"city": "São Paulo"}},
	}
	result, err := sender.SendMessageBatch(context.Background(), "imports", messages)
	if err != nil {
		t.Fatalf("SendMessageBatch() error = %v", err)
	}
	if !slices.Equal(result.Successful, []string{"New York", "São Paulo"}) {
		t.Fatalf("expected caller IDs back, got %v", result.Successful)
	}
	for _, id := range client.entryIDs {
		if strings.ContainsAny(id, " ã") {
			t.Fatalf("caller ID leaked into the request entry %q", id)
		}
	}
}

func TestSenderResolvesQueueURLOnce(t *testing.T) {
	client := &fakeClient{}
	sender := NewSender(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := sender.SendMessage(ctx, "imports", i); err != nil {
			t.Fatalf("SendMessage() error = %v", err)
		}
	}
	if _, err := sender.SendMessageBatch(ctx, "imports", []BatchMessage{{MessageID: "a", Body: 1}}); err != nil {
		t.Fatalf("SendMessageBatch() error = %v", err)
	}
	if client.urlCalls != 1 {
		t.Fatalf("expected one queue URL lookup, got %d", client.urlCalls)
	}
}

func TestSendMessageBatchMarksWholeBatchFailed(t *testing.T) {
	client := &fakeClient{batchErr: errors.New("throttled")}
	sender := NewSender(client)

	result, err := sender.SendMessageBatch(context.Background(), "imports", []BatchMessage{{MessageID: "a", Body: 1}, {MessageID: "b", Body: 2}})
	if err != nil {
		t.Fatalf("SendMessageBatch() error = %v", err)
	}
	if len(result.Failed) != 2 || len(result.Successful) != 0 {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestSendMessageBatchEmpty(t *testing.T) {
	result, err := NewSender(&fakeClient{}).SendMessageBatch(context.Background(), "missing", nil)
	if err != nil || len(result.Successful) != 0 || len(result.Failed) != 0 {
		t.Fatalf("unexpected result %+v, %v", result, err)
	}
}

func TestNewWorkerValidatesConfig(t *testing.T) {
	handler := HandlerFunc(func(context.Context, types.Message) error { return nil })

	tests := []struct {
		name   string
		config *WorkerConfig
	}{
		{"too many messages", &WorkerConfig{MaxNumberOfMessages: 11}},
		{"wait too long", &WorkerConfig{WaitTimeSeconds: 21}},
		{"negative pool", &WorkerConfig{PoolSize: -1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewWorker(context.Background(), &fakeClient{}, "imports", handler, tc.config); err == nil {
				t.Fatal("expected a validation error")
			}
		})
	}

	if _, err := NewWorker(context.Background(), &fakeClient{}, "missing", handler, nil); err == nil {
		t.Fatal("expected an error for an unknown queue")
	}
}

func TestWorkerDeletesOnlyHandledMessages(t *testing.T) {
	client := &fakeClient{queue: []types.Message{
		{MessageId: aws.String("1"), ReceiptHandle: aws.String("r-1"), Body: aws.String(`{"city":"Pune"}`)},
		{MessageId: aws.String("2"), ReceiptHandle: aws.String("r-2"), Body: aws.String(`not json`)},
	}}

	var handled sync.WaitGroup
	handled.Add(2)
	handler := HandlerFunc(func(_ context.Context, msg types.Message) error {
		defer handled.Done()
		var body map[string]string
		return json.Unmarshal([]byte(*msg.Body), &body)
	})

	worker, err := NewWorker(context.Background(), client, "imports", handler, &WorkerConfig{WaitTimeSeconds: 1})
	if err != nil {
		t.Fatalf("NewWorker() error = %v", err)
	}
	if status := worker.HealthCheck(); status.Status != StatusDown {
		t.Fatalf("a stopped worker must report DOWN, got %s", status.Status)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.Start(ctx)
		close(done)
	}()

	handled.Wait()
	deadline := time.Now().Add(time.Second)
	for len(client.deletedHandles()) == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	if status := worker.HealthCheck(); status.Status != StatusUp {
		t.Fatalf("a running worker must report UP, got %s", status.Status)
	}

	cancel()
	<-done

	deleted := client.deletedHandles()
	if len(deleted) != 1 || deleted[0] != "r-1" {
		t.Fatalf("expected only r-1 to be deleted, got %v", deleted)
	}

	status := worker.HealthCheck()
	if status.Details["processed"] != "1" || status.Details["failed"] != "1" {
		t.Fatalf("unexpected counters %v", status.Details)
	}
}
