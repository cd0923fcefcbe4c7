package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// allSentinel is the wire marker for an all-provinces scope. In memory the
// scope is a real sum type; the sentinel exists only at the JSON boundary.
const allSentinel = "ALL"

type holidayJSON struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Date         string   `json:"date"`
	ObservedDate string   `json:"observedDate,omitempty"`
	Type         Category `json:"type"`
	Provinces    []string `json:"provinces"`
	Description  string   `json:"description,omitempty"`
	IsStatutory  bool     `json:"isStatutory"`
}

// MarshalJSON renders the holiday in the remote source's record shape:
// ISO calendar dates, "type" for category, "ALL" for an all-provinces scope.
func (h Holiday) MarshalJSON() ([]byte, error) {
	provs := h.Provinces.Codes()
	if h.Provinces.IsAll() {
		provs = []string{allSentinel}
	}
	return json.Marshal(holidayJSON{
		ID:           h.ID,
		Name:         h.Name,
		Date:         FormatDate(h.Date),
		ObservedDate: FormatDate(h.ObservedDate),
		Type:         h.Category,
		Provinces:    provs,
		Description:  h.Description,
		IsStatutory:  h.Statutory,
	})
}

// UnmarshalJSON parses the wire shape back into a Holiday.
func (h *Holiday) UnmarshalJSON(data []byte) error {
	var w holidayJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	date, err := ParseDate(w.Date)
	if err != nil {
		return fmt.Errorf("holiday %q: %w", w.ID, err)
	}
	h.Date = date

	h.ObservedDate = time.Time{}
	if w.ObservedDate != "" {
		obs, err := ParseDate(w.ObservedDate)
		if err != nil {
			return fmt.Errorf("holiday %q: %w", w.ID, err)
		}
		h.ObservedDate = obs
	}

	h.Provinces = InProvinces()
	explicit := make([]string, 0, len(w.Provinces))
	for _, p := range w.Provinces {
		if p == allSentinel {
			h.Provinces = AllProvinces()
			explicit = nil
			break
		}
		explicit = append(explicit, p)
	}
	if explicit != nil {
		h.Provinces = InProvinces(explicit...)
	}

	h.ID = w.ID
	h.Name = w.Name
	h.Category = w.Type
	h.Description = w.Description
	h.Statutory = w.IsStatutory
	return nil
}
