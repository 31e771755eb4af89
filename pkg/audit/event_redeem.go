package audit

import "fmt"

// RedeemEvent records an attempt to exchange a key for a provisioned
// account. The password never appears in the event.
type RedeemEvent struct {
	KeyID        string
	Login        string
	Success      bool
	ErrorMessage string
}

func (e RedeemEvent) MessageID() string {
	return "redeem"
}

func (e RedeemEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("key %s redeemed by %s", e.KeyID, e.Login)
	}
	msg := fmt.Sprintf("failed redemption of key %s by %s", e.KeyID, e.Login)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RedeemEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RedeemEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RedeemEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"key":   e.KeyID,
			"login": e.Login,
		},
		SDIDAction: {
			"operation": "redeem",
			"result":    boolToResult(e.Success),
		},
	}
}
