package viewstate

import (
	"fmt"
	"sync"
)

// View names the screens the client can render. The set is closed; there is
// no URL routing or history, and a reset always lands on home.
type View string

const (
	ViewHome          View = "home"
	ViewDirectory     View = "directory"
	ViewDetail        View = "detail"
	ViewLogin         View = "login"
	ViewRegister      View = "register"
	ViewProfile       View = "profile"
	ViewLegal         View = "legal"
	ViewJobPortal     View = "job-portal"
	ViewJobDetail     View = "job-detail"
	ViewPostJob       View = "post-job"
	ViewProgram       View = "program"
	ViewCertification View = "apply-cert"
)

// LegalSection selects which legal document the legal view shows
type LegalSection string

const (
	LegalPrivacy    LegalSection = "privacy"
	LegalTerms      LegalSection = "terms"
	LegalDisclaimer LegalSection = "disclaimer"
)

// Effect is a side effect a transition asks the caller to perform
type Effect int

const (
	EffectNone Effect = iota
	EffectReloadDirectors
)

// State is a snapshot of the view machine
type State struct {
	View               View         `json:"view"`
	SelectedDirectorID string       `json:"selected_director_id,omitempty"`
	SelectedJobID      string       `json:"selected_job_id,omitempty"`
	LegalSection       LegalSection `json:"legal_section,omitempty"`
}

// Machine is the explicit state machine over the closed view set. All
// transitions are synchronous and cannot fail; only the data fetches backing
// a view can fail, and they fail into empty content within the same view.
type Machine struct {
	mu    sync.Mutex
	state State
}

// NewMachine creates a machine in the initial home state
func NewMachine() *Machine {
	return &Machine{state: State{View: ViewHome, LegalSection: LegalPrivacy}}
}

// State returns the current snapshot
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Reset returns to home, mirroring a page reload
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{View: ViewHome, LegalSection: LegalPrivacy}
}

// Navigate moves to a named view. Detail views keep whatever selection is
// already recorded; with no selection they render empty, not an error.
func (m *Machine) Navigate(v View) error {
	switch v {
	case ViewHome, ViewDirectory, ViewDetail, ViewLogin, ViewRegister,
		ViewProfile, ViewLegal, ViewJobPortal, ViewJobDetail, ViewPostJob,
		ViewProgram, ViewCertification:
	default:
		return fmt.Errorf("unknown view %q", v)
	}

	m.mu.Lock()
	m.state.View = v
	m.mu.Unlock()
	return nil
}

// SelectDirector records the selection and moves to the detail view
func (m *Machine) SelectDirector(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.SelectedDirectorID = id
	m.state.View = ViewDetail
}

// SelectJob records the selection and moves to the job detail view
func (m *Machine) SelectJob(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.SelectedJobID = id
	m.state.View = ViewJobDetail
}

// OpenLegal moves to the legal view showing the given section
func (m *Machine) OpenLegal(section LegalSection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.LegalSection = section
	m.state.View = ViewLegal
}

// Back returns from a detail view to its parent listing
func (m *Machine) Back() {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state.View {
	case ViewDetail:
		m.state.View = ViewDirectory
	case ViewJobDetail:
		m.state.View = ViewJobPortal
	case ViewCertification:
		m.state.View = ViewProgram
	case ViewProgram, ViewLegal:
		m.state.View = ViewHome
	default:
		m.state.View = ViewHome
	}
}

// RegistrationSucceeded moves to the profile view and asks for a directory
// reload. Also used after a successful profile deletion.
func (m *Machine) RegistrationSucceeded() Effect {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.View = ViewProfile
	return EffectReloadDirectors
}

// LoginSucceeded is the reactive transition driven by session state: a
// successful login while on the login view redirects home. Anywhere else it
// changes nothing.
func (m *Machine) LoginSucceeded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.View == ViewLogin {
		m.state.View = ViewHome
	}
}

// Resolve applies the profile guard: the profile view without a session
// renders the login view instead. The stored view name does not change.
func (m *Machine) Resolve(authenticated bool) View {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.View == ViewProfile && !authenticated {
		return ViewLogin
	}
	return m.state.View
}
