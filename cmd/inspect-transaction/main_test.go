package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunRequiresID(t *testing.T) {
	err := run(nil, io.Discard)
	assert.EqualError(t, err, "--id is required")
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	err := run([]string{"-verbose"}, io.Discard)
	assert.Error(t, err)
}
