package utils_test

import (
	"bytes"
	"context"
	"testing"

	"backoffice/src/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoggerContext(t *testing.T) {
	t.Run("default logger when none is set", func(t *testing.T) {
		assert.NotNil(t, utils.LoggerFromContext(context.Background()))
	})

	t.Run("entry is replaced in place", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logrus.New()
		logger.SetOutput(&buf)
		logger.SetFormatter(&logrus.JSONFormatter{})

		ctx := utils.WithLogger(context.Background(), logrus.NewEntry(logger).WithField("request_id", "r1"))
		utils.WithLogger(context.WithValue(ctx, struct{}{}, 1), utils.LoggerFromContext(ctx).WithField("user", "jdoe"))

		utils.LoggerFromContext(ctx).Info("done")
		assert.Contains(t, buf.String(), `"user":"jdoe"`)
		assert.Contains(t, buf.String(), `"request_id":"r1"`)
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, utils.ParseLevel("debug"))
	assert.Equal(t, logrus.InfoLevel, utils.ParseLevel("chatty"))
}
