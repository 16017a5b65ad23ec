package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "store-backoffice/pkg/errors"
)

func TestMultiSelectToggleInvolution(t *testing.T) {
	ms := NewMultiSelect([]string{"a", "b", "c"})

	require.NoError(t, ms.Toggle("a"))
	assert.True(t, ms.IsChosen("a"))

	// 再次翻转恢复原状
	require.NoError(t, ms.Toggle("a"))
	assert.False(t, ms.IsChosen("a"))
	assert.Empty(t, ms.Chosen())
}

func TestMultiSelectChosenOrder(t *testing.T) {
	ms := NewMultiSelect([]string{"a", "b", "c"})

	require.NoError(t, ms.Toggle("c"))
	require.NoError(t, ms.Toggle("a"))
	require.NoError(t, ms.Toggle("b"))
	assert.Equal(t, []string{"c", "a", "b"}, ms.Chosen())

	// 取消后重选的项排到末尾
	require.NoError(t, ms.Toggle("c"))
	require.NoError(t, ms.Toggle("c"))
	assert.Equal(t, []string{"a", "b", "c"}, ms.Chosen())
}

func TestMultiSelectUnknownCandidate(t *testing.T) {
	ms := NewMultiSelect([]string{"a"})

	err := ms.Toggle("zzz")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCandidate)
	assert.Empty(t, ms.Chosen())
}

func TestMultiSelectDone(t *testing.T) {
	ms := NewMultiSelect([]string{"a", "b"})

	_, err := ms.Done()
	assert.ErrorIs(t, err, apperrors.ErrEmptySelection)

	require.NoError(t, ms.Toggle("b"))
	require.NoError(t, ms.Toggle("a"))

	chosen, err := ms.Done()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, chosen)
}

func TestMultiSelectChosenIsCopy(t *testing.T) {
	ms := NewMultiSelect([]string{"a", "b"})
	require.NoError(t, ms.Toggle("a"))

	chosen := ms.Chosen()
	chosen[0] = "mutated"

	assert.Equal(t, []string{"a"}, ms.Chosen())
}
