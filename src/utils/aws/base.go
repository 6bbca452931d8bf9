package aws_handler

import (
	"errors"

	"backoffice/src/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

var ErrNoRegion = errors.New("aws region is not configured")

// NewSession builds the shared AWS session. Endpoint is only set for local
// stacks such as LocalStack; credentials come from the default chain.
func NewSession(cfg config.AWSConfig) (*session.Session, error) {
	if cfg.Region == "" {
		return nil, ErrNoRegion
	}
	awsConfig := aws.NewConfig().WithRegion(cfg.Region)
	if cfg.Endpoint != "" {
		awsConfig = awsConfig.WithEndpoint(cfg.Endpoint)
	}
	return session.NewSession(awsConfig)
}

// NewSecretResolver returns the SecretManager that resolves "secret:<id>"
// database passwords of the customer directory. Fetched values are kept
// for cfg.SecretCacheTTL so reopening an idle pool does not call AWS again.
func NewSecretResolver(cfg config.AWSConfig) (*SecretManager, error) {
	sess, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return NewSecretManager(secretsmanager.New(sess)).WithCache(cfg.SecretCacheTTL), nil
}
