package wizard

import (
	"sync"

	"store-backoffice/internal/domain/entity"
	"store-backoffice/pkg/metrics"
)

// StoreDraft 店铺创建流程的累积数据
type StoreDraft struct {
	Title         string
	Description   string
	Cities        *MultiSelect
	Categories    *MultiSelect
	CityIDs       []string
	CategoryIDs   []string
	MainPageURL   string
	ResourcesText string
	Resources     []entity.StoreResource
	PreviewPC     *entity.Media
	PreviewMobile *entity.Media
	MainPC        *entity.Media
	MainMobile    *entity.Media
	Priority      int
}

// BannerDraft 横幅创建流程的累积数据
type BannerDraft struct {
	TargetURL string
	PC        *entity.Media
	Mobile    *entity.Media
	Priority  int
}

// EditField 单字段编辑的目标字段
type EditField string

const (
	EditStoreTitle         EditField = "store_title"
	EditStoreDescription   EditField = "store_description"
	EditStorePriority      EditField = "store_priority"
	EditStoreMainPageURL   EditField = "store_main_page_url"
	EditStoreResources     EditField = "store_resources"
	EditStorePreviewPC     EditField = "store_preview_pc"
	EditStorePreviewMobile EditField = "store_preview_mobile"
	EditStoreMainPC        EditField = "store_main_pc"
	EditStoreMainMobile    EditField = "store_main_mobile"

	EditBannerTargetURL EditField = "banner_target_url"
	EditBannerPC        EditField = "banner_pc"
	EditBannerMobile    EditField = "banner_mobile"
	EditBannerPriority  EditField = "banner_priority"
)

// EditDraft 单字段编辑流程的目标
type EditDraft struct {
	TargetID string
	Field    EditField
}

// BrowseCursor 店铺浏览列表的分页游标
type BrowseCursor struct {
	Page       int
	PageSize   int
	TotalPages int
}

// Session 单个 chat 的向导会话。
// 每个 chat 的更新由调度器串行处理，字段无需加锁。
type Session struct {
	ChatID          int64
	Flow            Flow
	Step            Step
	AnchorMessageID int

	Store  *StoreDraft
	Banner *BannerDraft
	Edit   *EditDraft
	Browse *BrowseCursor
}

// Advance 将会话推进到流程的下一步
func (s *Session) Advance() {
	s.Step = NextStep(s.Flow, s.Step)
}

// Manager 管理全部 chat 的会话
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewManager 创建会话管理器
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[int64]*Session),
	}
}

// Get 返回 chat 的会话，不存在时返回 nil
func (m *Manager) Get(chatID int64) *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[chatID]
}

// GetOrCreate 返回 chat 的会话，不存在时创建空会话。
// 锚点消息 ID 等跨流程字段保存在会话上，因此菜单导航也需要会话存在。
func (m *Manager) GetOrCreate(chatID int64) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[chatID]; ok {
		return s
	}
	s := &Session{ChatID: chatID}
	m.sessions[chatID] = s
	metrics.BotActiveSessions.Set(float64(len(m.sessions)))
	return s
}

// StartFlow 在 chat 上启动新流程，清空旧的流程数据但保留锚点与游标
func (m *Manager) StartFlow(chatID int64, flow Flow) *Session {
	s := m.GetOrCreate(chatID)

	s.Flow = flow
	s.Step = FirstStep(flow)
	s.Store = nil
	s.Banner = nil
	s.Edit = nil

	switch flow {
	case FlowAddStore:
		s.Store = &StoreDraft{Priority: 1}
	case FlowAddBanner:
		s.Banner = &BannerDraft{Priority: 1}
	case FlowEditStore, FlowEditBanner:
		s.Edit = &EditDraft{}
	}

	return s
}

// ResetFlow 结束 chat 上的当前流程，保留锚点与游标
func (m *Manager) ResetFlow(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[chatID]; ok {
		s.Flow = FlowNone
		s.Step = StepNone
		s.Store = nil
		s.Banner = nil
		s.Edit = nil
	}
}
