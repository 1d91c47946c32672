package aws

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"weather-data-api/pkg/resource"
)

// NewSqsClient creates the SQS client, pointing at app.cloud.aws-endpoint when set (LocalStack)
func NewSqsClient(cfg aws.Config) *sqs.Client {
	return sqs.NewFromConfig(cfg, func(o *sqs.Options) {
		if endpoint := resource.GetString("app.cloud.aws-endpoint"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
}
