package audit

import "fmt"

// IssueEvent records the issuance of a fresh access key.
type IssueEvent struct {
	KeyID   string
	Comment string
}

func (e IssueEvent) MessageID() string {
	return "issue"
}

func (e IssueEvent) Message() string {
	if e.Comment == "" {
		return fmt.Sprintf("issued key %s", e.KeyID)
	}
	return fmt.Sprintf("issued key %s (%s)", e.KeyID, e.Comment)
}

func (e IssueEvent) Severity() Severity {
	return SeverityInfo
}

func (e IssueEvent) Facility() int {
	return FacilityAuthPriv
}

func (e IssueEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"key":     e.KeyID,
			"comment": e.Comment,
		},
		SDIDAction: {
			"operation": "issue",
		},
	}
}
