package succinct

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRange(t *testing.T) {
	require.NoError(t, CheckRange("rank1", 0, 0, 0))
	require.NoError(t, CheckRange("rank1", 5, 0, 9))

	err := CheckRange("rank1", 10, 0, 9)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.NotErrorIs(t, err, ErrInvalidArgument)

	var re *RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "rank1", re.Op)
	assert.Equal(t, 10, re.Value)
	assert.Equal(t, "rank1: 10 out of range [0, 9]", err.Error())

	err = CheckRange("select1", 1, 1, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, "select1: 1 out of range (empty domain)", err.Error())
}

func TestInvalidArgument(t *testing.T) {
	err := InvalidArgument("factor %d is negative", -3)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrOutOfRange)
	assert.Equal(t, "invalid argument: factor -3 is negative", err.Error())
}
