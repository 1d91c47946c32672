package aws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"weather-data-api/internal/domain/gateway/queue"
)

type recordingClient struct {
	entries []types.SendMessageBatchRequestEntry
}

func (c *recordingClient) GetQueueUrl(_ context.Context, params *sqs.GetQueueUrlInput, _ ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error) {
	return &sqs.GetQueueUrlOutput{QueueUrl: aws.String("https://sqs.local/" + *params.QueueName)}, nil
}

func (c *recordingClient) SendMessage(context.Context, *sqs.SendMessageInput, ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	return &sqs.SendMessageOutput{}, nil
}

func (c *recordingClient) SendMessageBatch(_ context.Context, params *sqs.SendMessageBatchInput, _ ...func(*sqs.Options)) (*sqs.SendMessageBatchOutput, error) {
	c.entries = append(c.entries, params.Entries...)
	output := &sqs.SendMessageBatchOutput{}
	for _, entry := range params.Entries {
		output.Successful = append(output.Successful, types.SendMessageBatchResultEntry{Id: entry.Id})
	}
	return output, nil
}

func TestSQSSenderAdapterConvertsBatches(t *testing.T) {
	client := &recordingClient{}
	adapter := NewSQSSenderAdapter(client)

	result, err := adapter.SendMessageBatch(context.Background(), "forecast-import", []queue.BatchMessage{
		{MessageID: "city-0", Body: map[string]string{"city": "Pune"}},
	})
	if err != nil {
		t.Fatalf("SendMessageBatch() error = %v", err)
	}
	if len(result.Successful) != 1 || result.Successful[0] != "city-0" {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(client.entries) != 1 || *client.entries[0].MessageBody != `{"city":"Pune"}` {
		t.Fatalf("unexpected entries %+v", client.entries)
	}
}
