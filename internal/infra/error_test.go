//go:build unit

package infra_test

import (
	"testing"

	"tickit/internal/infra"
	"tickit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	t.Run("defaults to db failure", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to insert", assert.AnError)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, err.Error(), "failed to insert")
	})

	t.Run("explicit kind survives wrapping", func(t *testing.T) {
		err := infra.WrapRepoErr("site not found", nil, infra.KindNotFound)
		wrapped := errs.Wrap(err, "catalog lookup")
		assert.True(t, infra.IsKind(wrapped, infra.KindNotFound))
		assert.False(t, infra.IsKind(wrapped, infra.KindConflict))
	})

	t.Run("plain errors have no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(assert.AnError, infra.KindNotFound))
	})
}
