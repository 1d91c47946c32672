package sqs

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"weather-data-api/pkg/log"
)

// maxBatchEntries is the SendMessageBatch entry limit
const maxBatchEntries = 10

// BatchMessage is one JSON body to publish. MessageID is the caller's key and is
// reported back in BatchResult; it never reaches SQS, so any string is accepted.
type BatchMessage struct {
	MessageID string `json:"messageId"`
	Body      any    `json:"body"`
}

// BatchResult lists caller message IDs by delivery outcome
type BatchResult struct {
	Successful []string `json:"successful"`
	Failed     []string `json:"failed"`
}

func (r *BatchResult) merge(other BatchResult) {
	r.Successful = append(r.Successful, other.Successful...)
	r.Failed = append(r.Failed, other.Failed...)
}

// SQSClient is the subset of the SQS API the sender needs
type SQSClient interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	SendMessageBatch(ctx context.Context, params *sqs.SendMessageBatchInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error)
}

// Sender publishes JSON messages. Queue URLs are resolved once per queue name
// and batch requests run with at most Parallelism in flight.
type Sender struct {
	client      SQSClient
	Parallelism int

	mu   sync.RWMutex
	urls map[string]string
}

func NewSender(client SQSClient) *Sender {
	return &Sender{
		client:      client,
		Parallelism: 4,
		urls:        make(map[string]string),
	}
}

// SendMessage publishes body as a single JSON message
func (s *Sender) SendMessage(ctx context.Context, queueName string, body any) error {
	queueURL, err := s.queueURL(ctx, queueName)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode message for %s: %w", queueName, err)
	}

	if _, err := s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(queueURL),
		MessageBody: aws.String(string(payload)),
	}); err != nil {
		return fmt.Errorf("failed to send message to %s: %w", queueName, err)
	}
	return nil
}

// SendMessageBatch publishes messages in requests of up to ten entries.
// A request that errors as a whole marks all of its messages failed; the
// returned error is reserved for failures that prevent sending anything.
func (s *Sender) SendMessageBatch(ctx context.Context, queueName string, messages []BatchMessage) (*BatchResult, error) {
	result := &BatchResult{Successful: []string{}, Failed: []string{}}
	if len(messages) == 0 {
		return result, nil
	}

	queueURL, err := s.queueURL(ctx, queueName)
	if err != nil {
		return nil, err
	}

	chunks := slices.Collect(slices.Chunk(messages, maxBatchEntries))
	outcomes := make([]BatchResult, len(chunks))

	limit := s.Parallelism
	if limit < 1 {
		limit = 1
	}
	slots := make(chan struct{}, limit)

	var wg sync.WaitGroup
	for i, chunk := range chunks {
		wg.Add(1)
		slots <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-slots }()

			outcome, err := s.sendChunk(ctx, queueURL, chunk)
			if err != nil {
				log.Warn("Batch request failed",
					zap.String("queue", queueName),
					zap.Int("messages", len(chunk)),
					zap.Error(err))
				outcome = BatchResult{Failed: callerIDs(chunk)}
			}
			outcomes[i] = outcome
		}()
	}
	wg.Wait()

	for _, outcome := range outcomes {
		result.merge(outcome)
	}

	log.Debug("Batch published",
		zap.String("queue", queueName),
		zap.Int("successful", len(result.Successful)),
		zap.Int("failed", len(result.Failed)))
	return result, nil
}

// sendChunk sends one request. Entries are keyed by their position in the chunk
// so caller IDs do not have to satisfy the SQS entry ID charset.
func (s *Sender) sendChunk(ctx context.Context, queueURL string, chunk []BatchMessage) (BatchResult, error) {
	var outcome BatchResult
	byEntry := make(map[string]string, len(chunk))
	entries := make([]types.SendMessageBatchRequestEntry, 0, len(chunk))

	for i, m := range chunk {
		payload, err := json.Marshal(m.Body)
		if err != nil {
			outcome.Failed = append(outcome.Failed, m.MessageID)
			continue
		}
		entryID := strconv.Itoa(i)
		byEntry[entryID] = m.MessageID
		entries = append(entries, types.SendMessageBatchRequestEntry{
			Id:          aws.String(entryID),
			MessageBody: aws.String(string(payload)),
		})
	}
	if len(entries) == 0 {
		return outcome, nil
	}

	output, err := s.client.SendMessageBatch(ctx, &sqs.SendMessageBatchInput{
		QueueUrl: aws.String(queueURL),
		Entries:  entries,
	})
	if err != nil {
		return BatchResult{}, err
	}

	for _, ok := range output.Successful {
		if id, found := byEntry[aws.ToString(ok.Id)]; found {
			outcome.Successful = append(outcome.Successful, id)
		}
	}
	for _, failed := range output.Failed {
		if id, found := byEntry[aws.ToString(failed.Id)]; found {
			outcome.Failed = append(outcome.Failed, id)
		}
	}
	return outcome, nil
}

func (s *Sender) queueURL(ctx context.Context, queueName string) (string, error) {
	s.mu.RLock()
	cached, ok := s.urls[queueName]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	output, err := s.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{QueueName: aws.String(queueName)})
	if err != nil {
		return "", fmt.Errorf("failed to resolve queue %s: %w", queueName, err)
	}
	if output.QueueUrl == nil {
		return "", fmt.Errorf("queue %s has no URL", queueName)
	}

	s.mu.Lock()
	s.urls[queueName] = *output.QueueUrl
	s.mu.Unlock()
	return *output.QueueUrl, nil
}

func callerIDs(messages []BatchMessage) []string {
	ids := make([]string, len(messages))
	for i, m := range messages {
		ids[i] = m.MessageID
	}
	return ids
}
