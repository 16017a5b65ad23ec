package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerStartFlow(t *testing.T) {
	m := NewManager()

	s := m.StartFlow(100, FlowAddStore)
	require.NotNil(t, s)
	assert.Equal(t, int64(100), s.ChatID)
	assert.Equal(t, FlowAddStore, s.Flow)
	assert.Equal(t, StepStoreTitle, s.Step)
	require.NotNil(t, s.Store)
	assert.Equal(t, 1, s.Store.Priority)
	assert.Nil(t, s.Banner)

	assert.Same(t, s, m.Get(100))
	assert.Nil(t, m.Get(200))
}

func TestManagerStartFlowKeepsAnchorAndCursor(t *testing.T) {
	m := NewManager()

	s := m.GetOrCreate(100)
	s.AnchorMessageID = 42
	s.Browse = &BrowseCursor{Page: 2, PageSize: 2, TotalPages: 3}

	s2 := m.StartFlow(100, FlowAddBanner)
	assert.Same(t, s, s2)
	assert.Equal(t, 42, s2.AnchorMessageID)
	require.NotNil(t, s2.Browse)
	assert.Equal(t, 2, s2.Browse.Page)
	require.NotNil(t, s2.Banner)
}

func TestManagerResetFlow(t *testing.T) {
	m := NewManager()

	s := m.StartFlow(100, FlowAddStore)
	s.AnchorMessageID = 42

	m.ResetFlow(100)

	s = m.Get(100)
	require.NotNil(t, s)
	assert.Equal(t, FlowNone, s.Flow)
	assert.Equal(t, StepNone, s.Step)
	assert.Nil(t, s.Store)
	assert.Equal(t, 42, s.AnchorMessageID)
}

func TestSessionAdvance(t *testing.T) {
	m := NewManager()

	s := m.StartFlow(100, FlowAddBanner)
	want := []Step{StepBannerPC, StepBannerMobile, StepBannerPriority, StepBannerConfirm, StepNone}
	for _, step := range want {
		s.Advance()
		assert.Equal(t, step, s.Step)
	}
}

func TestStoreFlowStepOrder(t *testing.T) {
	order := []Step{
		StepStoreTitle,
		StepStoreDescription,
		StepStoreCities,
		StepStoreCategories,
		StepStoreMainURL,
		StepStoreResources,
		StepStorePreviewPC,
		StepStorePreviewMobile,
		StepStoreMainPC,
		StepStoreMainMobile,
		StepStorePriority,
		StepStoreConfirm,
	}

	step := FirstStep(FlowAddStore)
	for i, want := range order {
		assert.Equal(t, want, step)
		assert.Equal(t, i+1, StepIndex(FlowAddStore, step))
		step = NextStep(FlowAddStore, step)
	}
	assert.Equal(t, StepNone, step)
}
