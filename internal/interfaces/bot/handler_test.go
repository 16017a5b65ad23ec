package bot

import (
	"context"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-backoffice/internal/application/category"
	"store-backoffice/internal/application/city"
	"store-backoffice/internal/application/store"
	"store-backoffice/internal/domain/entity"
	"store-backoffice/internal/wizard"
	apperrors "store-backoffice/pkg/errors"
)

type sentEdit struct {
	messageID int
	caption   string
	markup    *tgbotapi.InlineKeyboardMarkup
}

// fakeMessenger 记录全部出站调用
type fakeMessenger struct {
	nextMessageID int

	photos  []string
	edits   []sentEdit
	deleted []int
	alerts  []string
	acks    int
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{nextMessageID: 100}
}

func (m *fakeMessenger) SendPhoto(_ int64, photoPath, _ string, _ *tgbotapi.InlineKeyboardMarkup) (int, error) {
	m.photos = append(m.photos, photoPath)
	m.nextMessageID++
	return m.nextMessageID, nil
}

func (m *fakeMessenger) EditCaption(_ int64, messageID int, caption string, markup *tgbotapi.InlineKeyboardMarkup) error {
	m.edits = append(m.edits, sentEdit{messageID: messageID, caption: caption, markup: markup})
	return nil
}

func (m *fakeMessenger) DeleteMessage(_ int64, messageID int) error {
	m.deleted = append(m.deleted, messageID)
	return nil
}

func (m *fakeMessenger) AckCallback(_ string) error {
	m.acks++
	return nil
}

func (m *fakeMessenger) Alert(_ string, text string) error {
	m.alerts = append(m.alerts, text)
	return nil
}

func (m *fakeMessenger) DownloadFile(_ context.Context, fileID string) ([]byte, error) {
	return []byte("media:" + fileID), nil
}

func (m *fakeMessenger) lastEdit(t *testing.T) sentEdit {
	t.Helper()
	require.NotEmpty(t, m.edits)
	return m.edits[len(m.edits)-1]
}

type fakeCityRepo struct {
	cities map[string]entity.City
}

func newFakeCityRepo() *fakeCityRepo {
	return &fakeCityRepo{cities: make(map[string]entity.City)}
}

func (r *fakeCityRepo) GetByID(_ context.Context, cityID string) (*entity.City, error) {
	c, ok := r.cities[cityID]
	if !ok {
		return nil, apperrors.ErrCityNotFound
	}
	return &c, nil
}

func (r *fakeCityRepo) GetAll(_ context.Context) ([]entity.City, error) {
	if len(r.cities) == 0 {
		return nil, apperrors.ErrCitiesNotFound
	}
	out := make([]entity.City, 0, len(r.cities))
	for _, c := range r.cities {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCityRepo) GetStoreSelection(_ context.Context, _ string) ([]entity.CitySelection, error) {
	return nil, nil
}

func (r *fakeCityRepo) CreateBatch(_ context.Context, cities []entity.City) error {
	for _, c := range cities {
		r.cities[c.ID] = c
	}
	return nil
}

func (r *fakeCityRepo) Delete(_ context.Context, cityID string) error {
	delete(r.cities, cityID)
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[string]entity.Category)}
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, categoryID string) (*entity.Category, error) {
	c, ok := r.categories[categoryID]
	if !ok {
		return nil, apperrors.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *fakeCategoryRepo) GetAll(_ context.Context) ([]entity.Category, error) {
	if len(r.categories) == 0 {
		return nil, apperrors.ErrCategoriesNotFound
	}
	out := make([]entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCategoryRepo) GetStoreSelection(_ context.Context, _ string) ([]entity.CategorySelection, error) {
	return nil, nil
}

func (r *fakeCategoryRepo) CreateBatch(_ context.Context, categories []entity.Category) error {
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, categoryID string) error {
	delete(r.categories, categoryID)
	return nil
}

func newTestHandler(messenger *fakeMessenger, cityRepo *fakeCityRepo, categoryRepo *fakeCategoryRepo) (*Handler, *wizard.Manager) {
	sessions := wizard.NewManager()
	h := NewHandler(
		messenger,
		sessions,
		store.NewService(nil, cityRepo, categoryRepo, nil, nil, nil, nil, nil),
		nil,
		city.NewService(cityRepo),
		category.NewService(categoryRepo),
		nil,
		nil,
		"/opt/backoffice/anchor.png",
	)
	return h, sessions
}

func textMessage(chatID int64, messageID int, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		MessageID: messageID,
		Chat:      &tgbotapi.Chat{ID: chatID},
		From:      &tgbotapi.User{ID: chatID},
		Text:      text,
	}
}

func startMessage(chatID int64, messageID int) *tgbotapi.Message {
	msg := textMessage(chatID, messageID, "/start")
	msg.Entities = []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: 6}}
	return msg
}

func callbackQuery(chatID int64, anchorID int, data string) *tgbotapi.CallbackQuery {
	return &tgbotapi.CallbackQuery{
		ID:   "cb-1",
		Data: data,
		From: &tgbotapi.User{ID: chatID},
		Message: &tgbotapi.Message{
			MessageID: anchorID,
			Chat:      &tgbotapi.Chat{ID: chatID},
		},
	}
}

func TestHandleStartCreatesAnchor(t *testing.T) {
	messenger := newFakeMessenger()
	h, sessions := newTestHandler(messenger, newFakeCityRepo(), newFakeCategoryRepo())
	ctx := context.Background()

	h.HandleMessage(ctx, startMessage(7, 1))

	s := sessions.Get(7)
	require.NotNil(t, s)
	assert.Equal(t, 101, s.AnchorMessageID)
	assert.Equal(t, []string{"/opt/backoffice/anchor.png"}, messenger.photos)
	// /start 消息本身被删除
	assert.Equal(t, []int{1}, messenger.deleted)

	// 再次 /start 先删除旧锚点
	h.HandleMessage(ctx, startMessage(7, 2))
	assert.Equal(t, 102, sessions.Get(7).AnchorMessageID)
	assert.Contains(t, messenger.deleted, 101)
}

func TestUnsolicitedMessageDeletedSilently(t *testing.T) {
	messenger := newFakeMessenger()
	h, sessions := newTestHandler(messenger, newFakeCityRepo(), newFakeCategoryRepo())

	h.HandleMessage(context.Background(), textMessage(7, 5, "hello"))

	assert.Equal(t, []int{5}, messenger.deleted)
	assert.Empty(t, messenger.edits)
	assert.Nil(t, sessions.Get(7))
}

func TestAddCityFlow(t *testing.T) {
	messenger := newFakeMessenger()
	cityRepo := newFakeCityRepo()
	h, sessions := newTestHandler(messenger, cityRepo, newFakeCategoryRepo())
	ctx := context.Background()

	h.HandleMessage(ctx, startMessage(7, 1))
	anchorID := sessions.Get(7).AnchorMessageID

	h.HandleCallback(ctx, callbackQuery(7, anchorID, "add_city"))
	edit := messenger.lastEdit(t)
	assert.Equal(t, anchorID, edit.messageID)
	assert.Equal(t, textCityTitles, edit.caption)
	assert.Equal(t, 1, messenger.acks)

	h.HandleMessage(ctx, textMessage(7, 2, "Riga\nTallinn"))

	assert.Len(t, cityRepo.cities, 2)
	// 流程结束后回到主菜单
	assert.Equal(t, textMainMenu, messenger.lastEdit(t).caption)
	assert.Equal(t, wizard.FlowNone, sessions.Get(7).Flow)
}

func TestAddCityRejectsInvalidBatch(t *testing.T) {
	messenger := newFakeMessenger()
	cityRepo := newFakeCityRepo()
	h, sessions := newTestHandler(messenger, cityRepo, newFakeCategoryRepo())
	ctx := context.Background()

	h.HandleMessage(ctx, startMessage(7, 1))
	h.HandleCallback(ctx, callbackQuery(7, 101, "add_city"))

	h.HandleMessage(ctx, textMessage(7, 2, "Riga\n\nTallinn"))

	// 整批拒绝，步骤不推进
	assert.Empty(t, cityRepo.cities)
	assert.Equal(t, wizard.StepCityTitles, sessions.Get(7).Step)
}

func TestDeleteCityCallback(t *testing.T) {
	messenger := newFakeMessenger()
	cityRepo := newFakeCityRepo()
	cityRepo.cities["c1"] = entity.City{ID: "c1", Title: "Riga"}
	cityRepo.cities["c2"] = entity.City{ID: "c2", Title: "Tallinn"}
	h, _ := newTestHandler(messenger, cityRepo, newFakeCategoryRepo())
	ctx := context.Background()

	h.HandleMessage(ctx, startMessage(7, 1))

	h.HandleCallback(ctx, callbackQuery(7, 101, "del_city"))
	assert.Equal(t, textChooseCity, messenger.lastEdit(t).caption)

	h.HandleCallback(ctx, callbackQuery(7, 101, "rm_city:c1"))
	assert.Len(t, cityRepo.cities, 1)
	assert.Equal(t, []string{alertDeleted}, messenger.alerts)

	// 最后一个城市删除后回到主菜单
	h.HandleCallback(ctx, callbackQuery(7, 101, "rm_city:c2"))
	assert.Empty(t, cityRepo.cities)
	assert.Equal(t, textMainMenu, messenger.lastEdit(t).caption)
}

func TestBrowseWithoutCursorAlerts(t *testing.T) {
	messenger := newFakeMessenger()
	h, _ := newTestHandler(messenger, newFakeCityRepo(), newFakeCategoryRepo())
	ctx := context.Background()

	h.HandleMessage(ctx, startMessage(7, 1))
	h.HandleCallback(ctx, callbackQuery(7, 101, "prev_stores"))

	assert.Equal(t, []string{alertNoBrowseCursor}, messenger.alerts)
}

func TestAddStoreRequiresDictionaries(t *testing.T) {
	messenger := newFakeMessenger()
	h, sessions := newTestHandler(messenger, newFakeCityRepo(), newFakeCategoryRepo())
	ctx := context.Background()

	h.HandleMessage(ctx, startMessage(7, 1))
	h.HandleCallback(ctx, callbackQuery(7, 101, "add_store"))

	assert.Equal(t, []string{alertNoDictionaries}, messenger.alerts)
	assert.Equal(t, wizard.FlowNone, sessions.Get(7).Flow)
}

func TestSplitCallback(t *testing.T) {
	action, payload := splitCallback("store:abc")
	assert.Equal(t, "store", action)
	assert.Equal(t, "abc", payload)

	action, payload = splitCallback("main_menu")
	assert.Equal(t, "main_menu", action)
	assert.Empty(t, payload)

	first, second := splitPair("store-1:city-2")
	assert.Equal(t, "store-1", first)
	assert.Equal(t, "city-2", second)
}

func TestOverlongTitleInputLeavesStepUnchanged(t *testing.T) {
	messenger := newFakeMessenger()
	h, sessions := newTestHandler(messenger, newFakeCityRepo(), newFakeCategoryRepo())
	ctx := context.Background()

	s := sessions.StartFlow(7, wizard.FlowAddStore)
	s.AnchorMessageID = 50
	require.Equal(t, wizard.StepStoreTitle, s.Step)

	// 65 个字符超出标题上限，输入被静默丢弃
	h.HandleMessage(ctx, textMessage(7, 2, strings.Repeat("ы", 65)))

	assert.Equal(t, wizard.StepStoreTitle, s.Step)
	assert.Empty(t, s.Store.Title)
	assert.Contains(t, messenger.deleted, 2)
	assert.Empty(t, messenger.edits)

	// 上限按 rune 计，64 个双字节字符合法
	h.HandleMessage(ctx, textMessage(7, 3, strings.Repeat("ы", 64)))

	assert.Equal(t, wizard.StepStoreDescription, s.Step)
	assert.Equal(t, strings.Repeat("ы", 64), s.Store.Title)
}

func TestFlowPromptProgress(t *testing.T) {
	assert.Equal(t, "[1/12] "+textStoreTitle, flowPrompt(wizard.FlowAddStore, wizard.StepStoreTitle))
	assert.Equal(t, "[4/5] "+textBannerPriority, flowPrompt(wizard.FlowAddBanner, wizard.StepBannerPriority))

	// 单步流程不加进度前缀
	assert.Equal(t, textCityTitles, flowPrompt(wizard.FlowAddCity, wizard.StepCityTitles))
}
