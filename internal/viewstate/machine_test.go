package viewstate

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineStartsAtHome(t *testing.T) {
	m := NewMachine()
	state := m.State()
	assert.Equal(t, ViewHome, state.View)
	assert.Equal(t, LegalPrivacy, state.LegalSection)
	assert.Empty(t, state.SelectedDirectorID)
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		name    string
		view    View
		wantErr bool
	}{
		{name: "directory", view: ViewDirectory},
		{name: "job portal", view: ViewJobPortal},
		{name: "certification", view: ViewCertification},
		{name: "unknown view", view: View("dashboard"), wantErr: true},
		{name: "empty view", view: View(""), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			err := m.Navigate(tt.view)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ViewHome, m.State().View, "failed navigation leaves the state alone")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.view, m.State().View)
		})
	}
}

func TestSelectDirectorOpensDetail(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.Navigate(ViewDirectory))

	m.SelectDirector("3")
	state := m.State()
	assert.Equal(t, ViewDetail, state.View)
	assert.Equal(t, "3", state.SelectedDirectorID)
}

func TestDetailWithoutSelectionRendersEmpty(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.Navigate(ViewDetail))

	state := m.State()
	assert.Equal(t, ViewDetail, state.View)
	assert.Empty(t, state.SelectedDirectorID, "no selection is empty content, not an error")
}

func TestBack(t *testing.T) {
	tests := []struct {
		name string
		from View
		want View
	}{
		{name: "detail to directory", from: ViewDetail, want: ViewDirectory},
		{name: "job detail to portal", from: ViewJobDetail, want: ViewJobPortal},
		{name: "certification to program", from: ViewCertification, want: ViewProgram},
		{name: "program to home", from: ViewProgram, want: ViewHome},
		{name: "legal to home", from: ViewLegal, want: ViewHome},
		{name: "home stays home", from: ViewHome, want: ViewHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			require.NoError(t, m.Navigate(tt.from))
			m.Back()
			assert.Equal(t, tt.want, m.State().View)
		})
	}
}

func TestLoginSucceededOnlyRedirectsFromLogin(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.Navigate(ViewLogin))
	m.LoginSucceeded()
	assert.Equal(t, ViewHome, m.State().View)

	require.NoError(t, m.Navigate(ViewDirectory))
	m.LoginSucceeded()
	assert.Equal(t, ViewDirectory, m.State().View, "login elsewhere does not move the view")
}

func TestProfileGuard(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.Navigate(ViewProfile))

	assert.Equal(t, ViewLogin, m.Resolve(false), "profile without a session renders login")
	assert.Equal(t, ViewProfile, m.State().View, "the stored view does not change")
	assert.Equal(t, ViewProfile, m.Resolve(true))
}

func TestRegistrationSucceededAsksForReload(t *testing.T) {
	m := NewMachine()
	require.NoError(t, m.Navigate(ViewRegister))

	effect := m.RegistrationSucceeded()
	assert.Equal(t, EffectReloadDirectors, effect)
	assert.Equal(t, ViewProfile, m.State().View)
}

func TestResetReturnsHome(t *testing.T) {
	m := NewMachine()
	m.SelectDirector("3")
	m.Reset()

	state := m.State()
	assert.Equal(t, ViewHome, state.View)
	assert.Empty(t, state.SelectedDirectorID)
}

func TestRegistryIsolatesSessions(t *testing.T) {
	r := NewRegistry()

	a := r.Machine("token-a")
	b := r.Machine("token-b")
	require.NotSame(t, a, b)

	require.NoError(t, a.Navigate(ViewDirectory))
	assert.Equal(t, ViewHome, b.State().View)

	assert.Same(t, a, r.Machine("token-a"), "same token returns the same machine")

	r.Drop("token-a")
	fresh := r.Machine("token-a")
	assert.Equal(t, ViewHome, fresh.State().View)
}

func TestRegistryEvictsLeastRecentlyUsed(t *testing.T) {
	r := NewRegistry()
	r.max = 2

	a := r.Machine("token-a")
	time.Sleep(time.Millisecond)
	b := r.Machine("token-b")
	require.NoError(t, a.Navigate(ViewDirectory))
	require.NoError(t, b.Navigate(ViewJobPortal))

	// Touch a so b becomes the oldest entry
	time.Sleep(time.Millisecond)
	r.Machine("token-a")

	time.Sleep(time.Millisecond)
	r.Machine("token-c")

	assert.Same(t, a, r.Machine("token-a"), "recently used machine survives")
	assert.Len(t, r.machines, 2)

	fresh := r.Machine("token-b")
	assert.Equal(t, ViewHome, fresh.State().View, "evicted token starts over at home")
}

func TestRegistryStaysBounded(t *testing.T) {
	r := NewRegistry()
	r.max = 5

	for i := 0; i < 50; i++ {
		r.Machine(fmt.Sprintf("visitor-%d", i))
	}
	assert.LessOrEqual(t, len(r.machines), 5)
}
