// Package wizard 实现多步会话向导的状态核心。
// 会话按 chat 串行处理，除 Manager 外不做额外加锁。
package wizard

// Flow 向导流程标识
type Flow string

const (
	FlowNone        Flow = ""
	FlowAddStore    Flow = "add_store"
	FlowAddBanner   Flow = "add_banner"
	FlowAddCity     Flow = "add_city"
	FlowAddCategory Flow = "add_category"
	FlowEditStore   Flow = "edit_store"
	FlowEditBanner  Flow = "edit_banner"
)

// Step 向导步骤标识
type Step string

const (
	StepNone Step = ""

	// 店铺创建流程
	StepStoreTitle         Step = "store_title"
	StepStoreDescription   Step = "store_description"
	StepStoreCities        Step = "store_cities"
	StepStoreCategories    Step = "store_categories"
	StepStoreMainURL       Step = "store_main_url"
	StepStoreResources     Step = "store_resources"
	StepStorePreviewPC     Step = "store_preview_pc"
	StepStorePreviewMobile Step = "store_preview_mobile"
	StepStoreMainPC        Step = "store_main_pc"
	StepStoreMainMobile    Step = "store_main_mobile"
	StepStorePriority      Step = "store_priority"
	StepStoreConfirm       Step = "store_confirm"

	// 横幅创建流程
	StepBannerURL      Step = "banner_url"
	StepBannerPC       Step = "banner_pc"
	StepBannerMobile   Step = "banner_mobile"
	StepBannerPriority Step = "banner_priority"
	StepBannerConfirm  Step = "banner_confirm"

	// 城市/类目批量录入
	StepCityTitles     Step = "city_titles"
	StepCategoryTitles Step = "category_titles"

	// 单字段编辑，目标字段由 EditDraft 指定
	StepEditValue Step = "edit_value"
)

// flowSteps 各流程的固定步骤顺序
var flowSteps = map[Flow][]Step{
	FlowAddStore: {
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
	},
	FlowAddBanner: {
		StepBannerURL,
		StepBannerPC,
		StepBannerMobile,
		StepBannerPriority,
		StepBannerConfirm,
	},
	FlowAddCity:     {StepCityTitles},
	FlowAddCategory: {StepCategoryTitles},
	FlowEditStore:   {StepEditValue},
	FlowEditBanner:  {StepEditValue},
}

// FirstStep 返回流程的首个步骤
func FirstStep(flow Flow) Step {
	steps := flowSteps[flow]
	if len(steps) == 0 {
		return StepNone
	}
	return steps[0]
}

// NextStep 返回当前步骤的下一步，末步或未知步骤返回 StepNone
func NextStep(flow Flow, current Step) Step {
	steps := flowSteps[flow]
	for i, s := range steps {
		if s == current && i+1 < len(steps) {
			return steps[i+1]
		}
	}
	return StepNone
}

// StepIndex 返回步骤在流程中的序号（1 起始），未知步骤返回 0
func StepIndex(flow Flow, step Step) int {
	for i, s := range flowSteps[flow] {
		if s == step {
			return i + 1
		}
	}
	return 0
}

// StepCount 返回流程的总步骤数
func StepCount(flow Flow) int {
	return len(flowSteps[flow])
}
