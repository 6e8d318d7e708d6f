package domain

// ViewSnapshot — сохраненное состояние страницы каталога на момент ухода
// с нее: страница, фильтр статуса, валюта, прокрутка и полный набор
// параметров критериев. Привязывается к конкретной записи истории навигации.
type ViewSnapshot struct {
	Page         int               `json:"page"`
	Status       StatusFilter      `json:"status"`
	Currency     Currency          `json:"currency"`
	ScrollOffset float64           `json:"scroll_offset"`
	Params       map[string]string `json:"params"`
}

// ViewState — состояние одной навигационной записи: отложенный снимок
// плюс фаза машины Idle/Restoring.
//
// В Idle каждый RecordSnapshot перезаписывает снимок. BeginRestore выдает
// снимок ровно один раз, очищает его и переводит запись в Restoring —
// в этой фазе записи снимков подавляются, чтобы само восстановление
// не перетерло только что потребленный снимок. CompleteRestore возвращает
// запись в Idle.
type ViewState struct {
	Snapshot  *ViewSnapshot `json:"snapshot,omitempty"`
	Restoring bool          `json:"restoring"`
}

// RecordSnapshot сохраняет снимок текущего состояния. Во время
// восстановления запись молча игнорируется.
func (v *ViewState) RecordSnapshot(snap ViewSnapshot) {
	if v.Restoring {
		return
	}
	v.Snapshot = &snap
}

// BeginRestore потребляет отложенный снимок. Повторный вызов без
// промежуточного RecordSnapshot вернет ErrSnapshotNotFound — снимок
// потребляется не более одного раза.
func (v *ViewState) BeginRestore() (ViewSnapshot, error) {
	if v.Snapshot == nil {
		return ViewSnapshot{}, ErrSnapshotNotFound
	}

	snap := *v.Snapshot
	v.Snapshot = nil
	v.Restoring = true
	return snap, nil
}

// CompleteRestore завершает цикл восстановления и вновь разрешает
// записи снимков.
func (v *ViewState) CompleteRestore() {
	v.Restoring = false
}
