package page_test

import (
	"testing"

	"github.com/agstats/shionweb/internal/page"
	"github.com/stretchr/testify/assert"
)

func TestState_Lifecycle(t *testing.T) {
	var s page.State[[]int]
	assert.Equal(t, page.Idle, s.Status)

	s.Begin()
	assert.Equal(t, "loading", s.Status.String())

	s.Succeed([]int{1, 2})
	assert.True(t, s.Loaded())
	assert.Equal(t, []int{1, 2}, s.Data)

	s.Begin()
	s.Fail("Failed to fetch")
	assert.True(t, s.Failed())
	assert.Equal(t, "Failed to fetch", s.Err)
	assert.Equal(t, []int{1, 2}, s.Data, "prior data survives a failure")
	assert.True(t, s.HasData)

	s.Begin()
	s.Succeed([]int{3})
	assert.Empty(t, s.Err, "success clears the error")
}
