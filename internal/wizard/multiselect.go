package wizard

import (
	apperrors "store-backoffice/pkg/errors"
)

// MultiSelect 多选子协议的候选集。
// Toggle 是自反操作，已选顺序按首次选中的先后保持稳定。
type MultiSelect struct {
	valid  map[string]struct{}
	chosen map[string]struct{}
	order  []string
}

// NewMultiSelect 以固定候选集创建多选状态
func NewMultiSelect(candidateIDs []string) *MultiSelect {
	valid := make(map[string]struct{}, len(candidateIDs))
	for _, id := range candidateIDs {
		valid[id] = struct{}{}
	}
	return &MultiSelect{
		valid:  valid,
		chosen: make(map[string]struct{}),
	}
}

// Toggle 翻转候选项的选中状态，候选集之外的 ID 返回 ErrUnknownCandidate
func (m *MultiSelect) Toggle(id string) error {
	if _, ok := m.valid[id]; !ok {
		return apperrors.ErrUnknownCandidate
	}

	if _, ok := m.chosen[id]; ok {
		delete(m.chosen, id)
		for i, chosenID := range m.order {
			if chosenID == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
		return nil
	}

	m.chosen[id] = struct{}{}
	m.order = append(m.order, id)
	return nil
}

// IsChosen 返回候选项当前是否选中
func (m *MultiSelect) IsChosen(id string) bool {
	_, ok := m.chosen[id]
	return ok
}

// Chosen 按选中顺序返回已选 ID 副本
func (m *MultiSelect) Chosen() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Done 结束选择并返回有序结果，空选择返回 ErrEmptySelection
func (m *MultiSelect) Done() ([]string, error) {
	if len(m.order) == 0 {
		return nil, apperrors.ErrEmptySelection
	}
	return m.Chosen(), nil
}
