package ids

import "strings"

// Policy - способ выдачи id новой записи.
type Policy string

const (
	// PolicyLength выдаёт len(коллекции)+1. После удалений id может совпасть с уже существующим.
	PolicyLength Policy = "length"
	// PolicyMax выдаёт max(id)+1.
	PolicyMax Policy = "max"
)

func ParsePolicy(s string) Policy {
	if strings.EqualFold(strings.TrimSpace(s), string(PolicyMax)) {
		return PolicyMax
	}
	return PolicyLength
}

// Next возвращает id для записи, добавляемой в коллекцию с идентификаторами existing.
func (p Policy) Next(existing []int) int {
	if p != PolicyMax {
		return len(existing) + 1
	}

	maxID := 0
	for _, id := range existing {
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
