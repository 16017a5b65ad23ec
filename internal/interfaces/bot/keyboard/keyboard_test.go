package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-backoffice/internal/domain/entity"
)

func TestMultiSelectMarksChosen(t *testing.T) {
	markup := MultiSelect([]Choice{
		{ID: "c1", Title: "Riga", Chosen: true},
		{ID: "c2", Title: "Tallinn"},
	}, ActionToggleCity, ActionCitiesDone)

	// 两个候选行 + 完成行 + 返回行
	require.Len(t, markup.InlineKeyboard, 4)
	assert.Equal(t, "✅ Riga", markup.InlineKeyboard[0][0].Text)
	assert.Equal(t, "toggle_city:c1", *markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "❌ Tallinn", markup.InlineKeyboard[1][0].Text)
	assert.Equal(t, ActionCitiesDone, *markup.InlineKeyboard[2][0].CallbackData)
}

func TestStoreChoiceNavRow(t *testing.T) {
	markup := StoreChoice([]entity.Store{
		{ID: "s1", Title: "Alpha"},
		{ID: "s2", Title: "Beta"},
	}, 2, 5)

	require.Len(t, markup.InlineKeyboard, 4)
	assert.Equal(t, "store:s1", *markup.InlineKeyboard[0][0].CallbackData)

	nav := markup.InlineKeyboard[2]
	require.Len(t, nav, 3)
	assert.Equal(t, ActionPrevStores, *nav[0].CallbackData)
	assert.Equal(t, "[2/5]", nav[1].Text)
	assert.Equal(t, ActionNextStores, *nav[2].CallbackData)
}

func TestCitySelectionEncodesStoreAndCity(t *testing.T) {
	markup := CitySelection("s1", []entity.CitySelection{
		{ID: "c1", Title: "Riga", IsLinked: true},
		{ID: "c2", Title: "Tallinn"},
	})

	assert.Equal(t, "unlink_city:s1:c1", *markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "link_city:s1:c2", *markup.InlineKeyboard[1][0].CallbackData)
	// 返回键回到店铺菜单
	back := markup.InlineKeyboard[2][0]
	assert.Equal(t, "store:s1", *back.CallbackData)
}
