package audit

import "fmt"

// RecordEvent represents a record mutation audit event (create, update or
// delete of a vault record).
type RecordEvent struct {
	OwnerID      string
	ClientIP     string
	Kind         string
	RecordID     string
	Operation    string
	Success      bool
	ErrorMessage string
}

func (e RecordEvent) MessageID() string {
	return e.Operation
}

func (e RecordEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s %sd %s record %s", e.OwnerID, e.Operation, e.Kind, e.RecordID)
	}
	msg := fmt.Sprintf("%s tried to %s %s record %s", e.OwnerID, e.Operation, e.Kind, e.RecordID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RecordEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e RecordEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RecordEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"owner": e.OwnerID,
		},
		SDIDSubject: {
			"kind":   e.Kind,
			"record": e.RecordID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

// RevealEvent represents a copy-secret audit event: the raw secret value
// was handed out regardless of the mask state.
type RevealEvent struct {
	OwnerID      string
	ClientIP     string
	Kind         string
	RecordID     string
	Success      bool
	ErrorMessage string
}

func (e RevealEvent) MessageID() string {
	return "reveal"
}

func (e RevealEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s revealed the secret of %s record %s", e.OwnerID, e.Kind, e.RecordID)
	}
	msg := fmt.Sprintf("%s tried to reveal the secret of %s record %s", e.OwnerID, e.Kind, e.RecordID)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e RevealEvent) Severity() Severity {
	if e.Success {
		return SeverityNotice
	}
	return SeverityWarning
}

func (e RevealEvent) Facility() int {
	return FacilityAuthPriv
}

func (e RevealEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"owner": e.OwnerID,
		},
		SDIDSubject: {
			"kind":   e.Kind,
			"record": e.RecordID,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": "reveal",
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}

// AuthenticateEvent represents a sign-in, sign-up or password-reset audit
// event.
type AuthenticateEvent struct {
	Email        string
	ClientIP     string
	Operation    string
	Success      bool
	ErrorMessage string
}

func (e AuthenticateEvent) MessageID() string {
	return "authn"
}

func (e AuthenticateEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("%s succeeded for %s", e.Operation, e.Email)
	}
	msg := fmt.Sprintf("%s failed for %s", e.Operation, e.Email)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e AuthenticateEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e AuthenticateEvent) Facility() int {
	return FacilityAuthPriv
}

func (e AuthenticateEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"email": e.Email,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
		SDIDAction: {
			"operation": e.Operation,
		},
	}
	if e.Success {
		sd[SDIDAction]["result"] = "success"
	} else {
		sd[SDIDAction]["result"] = "failure"
	}
	return sd
}
