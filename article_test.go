package glean_test

import (
	"testing"

	"github.com/glean-dev/glean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidate_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid with URL only", func(t *testing.T) {
		t.Parallel()
		c := glean.Candidate{URL: "http://example.com/post"}
		require.NoError(t, c.Validate())
	})

	t.Run("valid with raw HTML", func(t *testing.T) {
		t.Parallel()
		c := glean.Candidate{URL: "http://example.com/post", RawHTML: "<html></html>"}
		require.NoError(t, c.Validate())
	})

	t.Run("missing URL", func(t *testing.T) {
		t.Parallel()
		c := glean.Candidate{RawHTML: "<html></html>"}
		err := c.Validate()
		require.Error(t, err)
		assert.Equal(t, glean.EINVALID, glean.ErrorCode(err))
	})
}
