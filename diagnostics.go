package jipg

import "github.com/kaptinlin/go-i18n"

// Diagnostic is one problem found while validating a schema tree or
// generating code for it — a duplicate key, an sbox collision, a cycle.
// Code is an i18n message key; Params fills its placeholders.
type Diagnostic struct {
	Path    string         `json:"path"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params,omitempty"`
}

func newDiagnostic(path, code, message string, params map[string]any) *Diagnostic {
	return &Diagnostic{Path: path, Code: code, Message: message, Params: params}
}

func (d *Diagnostic) Error() string {
	return replace(d.Message, d.Params)
}

// Localize renders the diagnostic's message in the localizer's locale,
// falling back to the English default when loc is nil.
func (d *Diagnostic) Localize(loc *i18n.Localizer) string {
	if loc == nil {
		return d.Error()
	}
	return loc.Get(d.Code, i18n.Vars(d.Params))
}

// Diagnostics collects every Diagnostic found during a single check.
type Diagnostics struct {
	items []*Diagnostic
}

func (ds *Diagnostics) add(d *Diagnostic) {
	ds.items = append(ds.items, d)
}

// Empty reports whether no diagnostics were collected.
func (ds *Diagnostics) Empty() bool {
	return len(ds.items) == 0
}

// Items returns every collected Diagnostic, in the order they were
// found.
func (ds *Diagnostics) Items() []*Diagnostic {
	return ds.items
}

// Error implements error, joining every diagnostic's message with the
// default (English) locale. Used when a *Diagnostics needs to satisfy
// an error-returning signature.
func (ds *Diagnostics) Error() string {
	if len(ds.items) == 0 {
		return "no diagnostics"
	}
	msg := ds.items[0].Error()
	for _, d := range ds.items[1:] {
		msg += "; " + d.Error()
	}
	return msg
}
