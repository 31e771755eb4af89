package audit

import "fmt"

// RevokeEvent records an administrative revocation of an unredeemed key.
type RevokeEvent struct {
	KeyID   string
	Comment string
	Found   bool
}

func (e RevokeEvent) MessageID() string {
	return "revoke"
}

func (e RevokeEvent) Message() string {
	if !e.Found {
		return fmt.Sprintf("revocation of unknown key %s", e.KeyID)
	}
	if e.Comment == "" {
		return fmt.Sprintf("revoked key %s", e.KeyID)
	}
	return fmt.Sprintf("revoked key %s (%s)", e.KeyID, e.Comment)
}

func (e RevokeEvent) Severity() Severity {
	if e.Found {
		return SeverityInfo
	}
	return SeverityNotice
}

func (e RevokeEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RevokeEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"key": e.KeyID,
		},
		SDIDAction: {
			"operation": "revoke",
			"result":    boolToResult(e.Found),
		},
	}
}
