package playback

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littletsp/littletsp/little"
)

func solvedResult(t *testing.T) little.Result {
	t.Helper()
	res, err := little.Solve([][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}, []string{"A", "B", "C", "D"}, little.DefaultOptions())
	require.NoError(t, err)

	return res
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_SteppingBounds(t *testing.T) {
	m := New(solvedResult(t))
	assert.Equal(t, 0, m.Step())

	// Prev at the first step stays put.
	next, _ := m.Update(keyMsg("h"))
	m = next.(Model)
	assert.Equal(t, 0, m.Step())

	next, _ = m.Update(keyMsg("l"))
	m = next.(Model)
	assert.Equal(t, 1, m.Step())

	// Jump to the last step; Next stays put there.
	next, _ = m.Update(keyMsg("G"))
	m = next.(Model)
	assert.Equal(t, len(m.trace)-1, m.Step())
	next, _ = m.Update(keyMsg("l"))
	m = next.(Model)
	assert.Equal(t, len(m.trace)-1, m.Step())

	// Back to the first.
	next, _ = m.Update(keyMsg("g"))
	m = next.(Model)
	assert.Equal(t, 0, m.Step())
}

func TestModel_ViewRendersTrace(t *testing.T) {
	m := New(solvedResult(t))

	v := m.View()
	assert.True(t, strings.Contains(v, "step 1/"))
	assert.True(t, strings.Contains(v, "reduction"))
	assert.True(t, strings.Contains(v, "M"), "forbidden diagonal must render")
	assert.True(t, strings.Contains(v, "A"), "labels must head the matrix grid")

	// The final step shows the tour and cost.
	next, _ := m.Update(keyMsg("G"))
	m = next.(Model)
	v = m.View()
	assert.True(t, strings.Contains(v, "final"))
	assert.True(t, strings.Contains(v, "cost 80"))
}

func TestModel_QuitAndHelp(t *testing.T) {
	m := New(solvedResult(t))

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	next, _ := m.Update(keyMsg("?"))
	m = next.(Model)
	assert.True(t, m.showHelp)
}

func TestModel_EmptyTrace(t *testing.T) {
	m := New(little.Result{})
	assert.Equal(t, "empty trace\n", m.View())
}
