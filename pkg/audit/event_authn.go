package audit

// AuthnEvent records an administrative authorization check.
type AuthnEvent struct {
	Operation string
	Success   bool
}

func (e AuthnEvent) MessageID() string {
	return "authn"
}

func (e AuthnEvent) Message() string {
	if e.Success {
		return "administrator authorized for " + e.Operation
	}
	return "rejected administrator token for " + e.Operation
}

func (e AuthnEvent) Severity() Severity {
	if e.Success {
		return SeverityDebug
	}
	return SeverityWarning
}

func (e AuthnEvent) Facility() int {
	return FacilityAuth
}

func (e AuthnEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDAuth: {
			"operation": e.Operation,
			"result":    boolToResult(e.Success),
		},
	}
}

func boolToResult(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
