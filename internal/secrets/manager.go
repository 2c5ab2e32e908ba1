package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Manager reads credentials from AWS Secrets Manager. The secret value is a
// JSON document with "username" and "password" fields.
type Manager struct {
	client     secretsAPI
	secretName string
}

// NewManager builds a Manager using the SDK's default credential chain.
// Region is optional; when empty the chain's own resolution applies.
func NewManager(ctx context.Context, secretName, region string) (*Manager, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &Manager{
		client:     secretsmanager.NewFromConfig(cfg),
		secretName: secretName,
	}, nil
}

func (m *Manager) Credentials(ctx context.Context) (Credentials, error) {
	out, err := m.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(m.secretName),
	})
	if err != nil {
		return Credentials{}, fmt.Errorf("fetching secret %q: %w", m.secretName, err)
	}
	if out.SecretString == nil {
		return Credentials{}, fmt.Errorf("secret %q has no string value", m.secretName)
	}
	var creds Credentials
	if err := json.Unmarshal([]byte(*out.SecretString), &creds); err != nil {
		return Credentials{}, fmt.Errorf("decoding secret %q: %w", m.secretName, err)
	}
	if creds.Username == "" || creds.Password == "" {
		return Credentials{}, errors.New("secret is missing username or password")
	}
	return creds, nil
}
