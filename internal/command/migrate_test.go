package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrateDown_RejectsNegativeSteps(t *testing.T) {
	err := MigrateDown("file://does-not-exist", "postgres://postgres@127.0.0.1:1/wohure?sslmode=disable", -1)
	assert.ErrorContains(t, err, "steps must be >= 0, got -1")
}
