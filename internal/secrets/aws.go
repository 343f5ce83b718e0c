package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
)

// secretsManagerClient is the subset of secretsmanager.Client used here.
type secretsManagerClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// AWSSecretsLookup reads secrets from AWS Secrets Manager. The secret id is
// prefix + name.
type AWSSecretsLookup struct {
	client secretsManagerClient
	prefix string
}

// NewAWSSecretsLookup uses the default AWS credential chain.
func NewAWSSecretsLookup(ctx context.Context, region, prefix string) (*AWSSecretsLookup, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &AWSSecretsLookup{client: secretsmanager.NewFromConfig(cfg), prefix: prefix}, nil
}

func (l *AWSSecretsLookup) Lookup(ctx context.Context, name string) (string, bool, error) {
	out, err := l.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(l.prefix + name),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("secrets manager lookup of %s failed: %w", name, err)
	}
	if out.SecretString == nil || *out.SecretString == "" {
		return "", false, nil
	}
	return *out.SecretString, true, nil
}
