package response

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageResponse(t *testing.T) {
	link := func(page int) string { return fmt.Sprintf("http://api.local/rides/?page=%d", page) }

	t.Run("first of several", func(t *testing.T) {
		resp := NewPageResponse([]int{1, 2, 3}, 1, 3, 7, link)
		assert.Equal(t, int64(7), resp.Count)
		require.NotNil(t, resp.Next)
		assert.Equal(t, "http://api.local/rides/?page=2", *resp.Next)
		assert.Nil(t, resp.Previous)
	})

	t.Run("last page", func(t *testing.T) {
		resp := NewPageResponse([]int{7}, 3, 3, 7, link)
		assert.Nil(t, resp.Next)
		require.NotNil(t, resp.Previous)
		assert.Equal(t, "http://api.local/rides/?page=2", *resp.Previous)
	})

	t.Run("empty results encode as a list", func(t *testing.T) {
		resp := NewPageResponse[int](nil, 1, 3, 0, link)
		assert.NotNil(t, resp.Results)
		assert.Empty(t, resp.Results)
		assert.Nil(t, resp.Next)
		assert.Nil(t, resp.Previous)
	})
}
