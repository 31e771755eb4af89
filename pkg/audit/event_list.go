package audit

import (
	"fmt"
	"strconv"
)

// ListEvent records an administrative listing of both registries.
type ListEvent struct {
	KeyCount  int
	UserCount int
}

func (e ListEvent) MessageID() string {
	return "list"
}

func (e ListEvent) Message() string {
	return fmt.Sprintf("listed %d unused keys and %d users", e.KeyCount, e.UserCount)
}

func (e ListEvent) Severity() Severity {
	return SeverityInfo
}

func (e ListEvent) Facility() int {
	return FacilityAuthPriv
}

func (e ListEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAction: {
			"operation": "list",
			"keys":      strconv.Itoa(e.KeyCount),
			"users":     strconv.Itoa(e.UserCount),
		},
	}
}
