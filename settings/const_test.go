package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSegmentSize(t *testing.T) {
	// msgq segment sizes are 64-bit regardless of platform
	var size int64 = GetSegmentSize("plannerOut")
	assert.Equal(t, int64(DEFAULT_SEGMENT_SIZE), size)
}
