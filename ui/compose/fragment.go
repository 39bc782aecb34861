// Package compose is the view-composition engine behind the analysis-detail
// modal: a registry of named, conditionally-rendered fragments, a deferred
// extension queue that lets independently-loaded fragment packages register
// regardless of load order, a tab-grouping state machine, and the modal
// builder that ties them together.
package compose

import (
	"html/template"

	"leadscope/models"
)

// Fragment is one named, conditionally-eligible unit of modal content.
// Implementations are registered once per name; re-registration overwrites.
type Fragment interface {
	// Name is the registry key referenced by layout configs.
	Name() string

	// Eligible decides whether the fragment renders for this lead and
	// payload. Predicates must fail closed: absent payload sections mean
	// "nothing to show", never a panic.
	Eligible(lead *models.Lead, p models.Payload) bool

	// Render produces the fragment's markup. An error (or panic) drops
	// only this fragment from the build.
	Render(lead *models.Lead, p models.Payload) (template.HTML, error)
}

// FragmentFunc adapts literal functions to Fragment. A nil Predicate means
// the fragment is unconditionally eligible.
type FragmentFunc struct {
	FragmentName string
	Predicate    func(lead *models.Lead, p models.Payload) bool
	RenderFunc   func(lead *models.Lead, p models.Payload) (template.HTML, error)
}

// Name implements Fragment.
func (f FragmentFunc) Name() string {
	return f.FragmentName
}

// Eligible implements Fragment.
func (f FragmentFunc) Eligible(lead *models.Lead, p models.Payload) bool {
	if f.Predicate == nil {
		return true
	}
	return f.Predicate(lead, p)
}

// Render implements Fragment.
func (f FragmentFunc) Render(lead *models.Lead, p models.Payload) (template.HTML, error) {
	return f.RenderFunc(lead, p)
}
