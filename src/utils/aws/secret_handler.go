package aws_handler

import (
	"fmt"
	"strings"
	"time"

	"backoffice/src/utils"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
)

// SecretPrefix marks a configuration value that must be fetched from
// Secrets Manager instead of being used verbatim, e.g. "secret:tms/acme/db".
const SecretPrefix = "secret:"

type SecretManager struct {
	svc   secretsmanageriface.SecretsManagerAPI
	cache *utils.Cache[string, string]
	ttl   time.Duration
}

func NewSecretManager(svc secretsmanageriface.SecretsManagerAPI) *SecretManager {
	return &SecretManager{svc: svc}
}

// WithCache keeps fetched values for ttl. A zero ttl disables caching.
func (s *SecretManager) WithCache(ttl time.Duration) *SecretManager {
	if ttl > 0 {
		s.cache = utils.NewCache[string, string]()
		s.ttl = ttl
	}
	return s
}

func (s *SecretManager) GetSecretValue(secretId string) (string, error) {
	if s.cache != nil {
		if value, ok := s.cache.Get(secretId); ok {
			return value, nil
		}
	}
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretId),
	}

	result, err := s.svc.GetSecretValue(input)
	if err != nil {
		return "", err
	}
	if result.SecretString == nil {
		return "", fmt.Errorf("secret %s has no string value", secretId)
	}
	if s.cache != nil {
		s.cache.Set(secretId, *result.SecretString, s.ttl)
	}
	return *result.SecretString, nil
}

// Resolve returns value unchanged unless it carries SecretPrefix, in which
// case the referenced secret is fetched.
func (s *SecretManager) Resolve(value string) (string, error) {
	if !strings.HasPrefix(value, SecretPrefix) {
		return value, nil
	}
	if s == nil {
		return "", fmt.Errorf("secret reference %q found but no secrets manager is configured", value)
	}
	return s.GetSecretValue(strings.TrimPrefix(value, SecretPrefix))
}
