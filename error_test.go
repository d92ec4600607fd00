package recast_test

import (
	"errors"
	"testing"

	"recast"

	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := recast.Errorf(recast.ENOTFOUND, "article %q not found", "test")

	assert.Equal(t, recast.ENOTFOUND, recast.ErrorCode(err))
	assert.Equal(t, "article \"test\" not found", recast.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recast.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, recast.EINTERNAL, recast.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, recast.ErrorMessage(nil))
}
