package teacher

import (
	"time"

	"paybill/internal/domain/fieldmap"
)

// Teacher is an identity record keyed by the government-issued Shalarth ID.
type Teacher struct {
	ID          string    `json:"id"`
	ShalarthID  string    `json:"shalarthId"`
	Name        string    `json:"name"`
	Mobile      string    `json:"mobile"`
	PANNo       string    `json:"panNo,omitempty"`
	GPFNo       string    `json:"gpfNo,omitempty"`
	PRANNo      string    `json:"pranNo,omitempty"`
	Designation string    `json:"designation,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AttributeValue returns the teacher attribute named by a field mapping's
// ValueKey, or empty string for unknown keys.
func (t Teacher) AttributeValue(key string) string {
	switch key {
	case fieldmap.ValueKeyName:
		return t.Name
	case fieldmap.ValueKeyShalarthID:
		return t.ShalarthID
	case fieldmap.ValueKeyMobile:
		return t.Mobile
	case fieldmap.ValueKeyPANNo:
		return t.PANNo
	case fieldmap.ValueKeyGPFNo:
		return t.GPFNo
	case fieldmap.ValueKeyPRANNo:
		return t.PRANNo
	case fieldmap.ValueKeyDesignation:
		return t.Designation
	}
	return ""
}
