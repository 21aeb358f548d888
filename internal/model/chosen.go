package model

// ChosenSet Неизменяемое множество выбранных вариантов.
// Порядок добавления сохраняется. With всегда возвращает новое значение,
// исходное множество не меняется.
type ChosenSet struct {
	ids []string
}

// NewChosenSet Собирает множество из списка, дубликаты отбрасываются
func NewChosenSet(ids ...string) ChosenSet {
	var s ChosenSet
	for _, id := range ids {
		s = s.With(id)
	}
	return s
}

// With Возвращает новое множество с добавленным id
func (s ChosenSet) With(id string) ChosenSet {
	if s.Has(id) {
		return s
	}
	ids := make([]string, len(s.ids), len(s.ids)+1)
	copy(ids, s.ids)
	return ChosenSet{ids: append(ids, id)}
}

func (s ChosenSet) Has(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

func (s ChosenSet) Len() int {
	return len(s.ids)
}

// IDs Копия списка в порядке добавления
func (s ChosenSet) IDs() []string {
	ids := make([]string, len(s.ids))
	copy(ids, s.ids)
	return ids
}

// Equal Сравнение с учётом порядка
func (s ChosenSet) Equal(other ChosenSet) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}
	for i := range s.ids {
		if s.ids[i] != other.ids[i] {
			return false
		}
	}
	return true
}
