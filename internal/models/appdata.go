package models

import "time"

// AppData is the single source of truth for the whole application. It
// is loaded once at startup and persisted as one blob after every
// mutation; no component holds a parallel copy.
type AppData struct {
	Children      map[string]*Child `json:"children"`
	ActiveChildID *string           `json:"activeChildId"`
	Version       string            `json:"version"`
	LastBackup    *time.Time        `json:"lastBackup,omitempty"`
}

// NewAppData returns a fresh, empty AppData at the given version
func NewAppData(version string) *AppData {
	return &AppData{
		Children: make(map[string]*Child),
		Version:  version,
	}
}

// ActiveChild returns the currently active child, or nil if none is set
func (d *AppData) ActiveChild() *Child {
	if d.ActiveChildID == nil {
		return nil
	}
	return d.Children[*d.ActiveChildID]
}

// ChildNames returns the names of all children except the one with the
// given ID. Used for duplicate-name checks when creating or renaming.
func (d *AppData) ChildNames(excludeID string) []string {
	names := make([]string, 0, len(d.Children))
	for id, child := range d.Children {
		if id == excludeID {
			continue
		}
		names = append(names, child.Name)
	}
	return names
}
