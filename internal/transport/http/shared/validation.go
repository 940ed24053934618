package shared

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"paybill/internal/transport/http/api"
)

// Months a paybill can be uploaded for, as spelled in requests.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

type ValidationIssue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

type Validator struct {
	issues []ValidationIssue
}

func NewValidator() *Validator {
	return &Validator{issues: make([]ValidationIssue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	if v == nil || strings.TrimSpace(reason) == "" {
		return
	}
	v.issues = append(v.issues, ValidationIssue{
		Field:  strings.TrimSpace(field),
		Reason: strings.TrimSpace(reason),
	})
}

func (v *Validator) Required(field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, reason)
	}
}

// Month accepts any capitalisation of a calendar month name.
func (v *Validator) Month(field, value string) {
	normalized := strings.TrimSpace(value)
	if normalized == "" {
		return
	}
	for _, month := range Months {
		if strings.EqualFold(normalized, month) {
			return
		}
	}
	v.Add(field, "must be a calendar month name, e.g. June")
}

// Year accepts a four-digit calendar year.
func (v *Validator) Year(field, value string) {
	normalized := strings.TrimSpace(value)
	if normalized == "" {
		return
	}
	year, err := strconv.Atoi(normalized)
	if err != nil || year < 2000 || year > 2099 {
		v.Add(field, "must be a four-digit year, e.g. 2025")
	}
}

func (v *Validator) HasIssues() bool {
	return v != nil && len(v.issues) > 0
}

func (v *Validator) Issues() []ValidationIssue {
	if v == nil || len(v.issues) == 0 {
		return nil
	}
	out := make([]ValidationIssue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return out
}

func (v *Validator) Reject(w http.ResponseWriter, requestID string) bool {
	if !v.HasIssues() {
		return false
	}
	api.FailWithDetails(
		w,
		http.StatusBadRequest,
		"validation_error",
		"payload validation failed",
		map[string]any{"fields": v.Issues()},
		requestID,
	)
	return true
}
