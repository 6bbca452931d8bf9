package aws_handler_test

import (
	"errors"
	"testing"
	"time"

	"backoffice/src/config"
	aws_handler "backoffice/src/utils/aws"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	secretsmanageriface.SecretsManagerAPI
	values map[string]string
	calls  int
}

func (f *fakeSecrets) GetSecretValue(input *secretsmanager.GetSecretValueInput) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	value, ok := f.values[aws.StringValue(input.SecretId)]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(value)}, nil
}

func TestSecretManagerResolve(t *testing.T) {
	manager := aws_handler.NewSecretManager(&fakeSecrets{values: map[string]string{"tms/acme/db": "s3cr3t"}})

	t.Run("plain values pass through", func(t *testing.T) {
		value, err := manager.Resolve("plain-password")
		require.NoError(t, err)
		assert.Equal(t, "plain-password", value)
	})

	t.Run("secret references are fetched", func(t *testing.T) {
		value, err := manager.Resolve("secret:tms/acme/db")
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", value)
	})

	t.Run("unknown secret", func(t *testing.T) {
		_, err := manager.Resolve("secret:tms/other/db")
		assert.Error(t, err)
	})

	t.Run("no manager configured", func(t *testing.T) {
		var none *aws_handler.SecretManager
		value, err := none.Resolve("plain")
		require.NoError(t, err)
		assert.Equal(t, "plain", value)

		_, err = none.Resolve("secret:tms/acme/db")
		assert.Error(t, err)
	})
}

func TestSecretManagerCache(t *testing.T) {
	svc := &fakeSecrets{values: map[string]string{"tms/acme/db": "s3cr3t"}}
	manager := aws_handler.NewSecretManager(svc).WithCache(time.Minute)

	for i := 0; i < 3; i++ {
		value, err := manager.Resolve("secret:tms/acme/db")
		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", value)
	}
	assert.Equal(t, 1, svc.calls)

	// failures are not remembered
	_, err := manager.Resolve("secret:tms/other/db")
	assert.Error(t, err)
	svc.values["tms/other/db"] = "later"
	value, err := manager.Resolve("secret:tms/other/db")
	require.NoError(t, err)
	assert.Equal(t, "later", value)

	uncached := &fakeSecrets{values: map[string]string{"tms/acme/db": "s3cr3t"}}
	plain := aws_handler.NewSecretManager(uncached).WithCache(0)
	_, _ = plain.GetSecretValue("tms/acme/db")
	_, _ = plain.GetSecretValue("tms/acme/db")
	assert.Equal(t, 2, uncached.calls)
}

func TestNewSecretResolver(t *testing.T) {
	_, err := aws_handler.NewSecretResolver(config.AWSConfig{})
	assert.ErrorIs(t, err, aws_handler.ErrNoRegion)

	sess, err := aws_handler.NewSession(config.AWSConfig{Region: "us-east-1", Endpoint: "http://localhost:4566"})
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", aws.StringValue(sess.Config.Region))
	assert.Equal(t, "http://localhost:4566", aws.StringValue(sess.Config.Endpoint))

	manager, err := aws_handler.NewSecretResolver(config.AWSConfig{Region: "us-east-1", SecretCacheTTL: time.Minute})
	require.NoError(t, err)
	value, err := manager.Resolve("plain-password")
	require.NoError(t, err)
	assert.Equal(t, "plain-password", value)
}
