package phone

import "sort"

// OverviewApp is one entry in the task switcher.
type OverviewApp struct {
	ID     View   `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// appPriority is the fixed relative order of known apps in the switcher.
// Entries not in this list sort after the known ones, most recent first.
var appPriority = []View{ViewChat, ViewGalleryLocked, ViewGalleryUnlocked, ViewBrowser, ViewCalculator}

func priorityIndex(id View) int {
	for i, v := range appPriority {
		if v == id {
			return i
		}
	}
	return len(appPriority)
}

// Overview is the recent-apps registry. It holds at most one entry per view
// id; the locked and unlocked gallery views share a single slot.
type Overview struct {
	apps []OverviewApp
}

// Upsert inserts or refreshes the entry for id. Inserting one gallery state
// evicts the other, then the registry is re-sorted by the fixed priority
// order.
func (o *Overview) Upsert(id View, title, status string) {
	switch id {
	case ViewGalleryUnlocked:
		o.Remove(ViewGalleryLocked)
	case ViewGalleryLocked:
		o.Remove(ViewGalleryUnlocked)
	}
	o.Remove(id)

	o.apps = append([]OverviewApp{{ID: id, Title: title, Status: status}}, o.apps...)
	sort.SliceStable(o.apps, func(i, j int) bool {
		return priorityIndex(o.apps[i].ID) < priorityIndex(o.apps[j].ID)
	})
}

// Remove deletes the entry for id, if present.
func (o *Overview) Remove(id View) {
	kept := o.apps[:0]
	for _, app := range o.apps {
		if app.ID != id {
			kept = append(kept, app)
		}
	}
	o.apps = kept
}

// Contains reports whether an entry for id exists.
func (o *Overview) Contains(id View) bool {
	for _, app := range o.apps {
		if app.ID == id {
			return true
		}
	}
	return false
}

// Apps returns a copy of the registry in display order.
func (o *Overview) Apps() []OverviewApp {
	apps := make([]OverviewApp, len(o.apps))
	copy(apps, o.apps)
	return apps
}

// Len returns the number of open entries.
func (o *Overview) Len() int {
	return len(o.apps)
}
