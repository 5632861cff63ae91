package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunFailsWithoutProject(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "")
	err := run(context.Background())
	assert.ErrorContains(t, err, "config load")
}
