package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemNode_QueryAndClone(t *testing.T) {
	tmpl := El("article", "class", "card").With(
		El("h2", RoleAttribute, "speak-word"),
		El("div", RoleAttribute, "memory").With(
			El("input", "type", "checkbox"),
			El("input", "type", "text"),
		),
	)

	word := tmpl.QueryRole("speak-word")
	require.NotNil(t, word)
	assert.Nil(t, tmpl.QueryRole("missing"), "見つからなければ nil インターフェース")

	tmpl.AddEventListener("click", func(*Event) {})
	clone := tmpl.CloneNode().(*MemNode)
	assert.Equal(t, tmpl.String(), clone.String())
	assert.Equal(t, 0, clone.ListenerCount("click"), "リスナーは複製しない")

	clone.QueryRole("speak-word").SetText("食べる")
	assert.Empty(t, word.Text(), "複製は元の要素と独立")
	assert.Len(t, clone.Checkboxes(), 1)
}

func TestMemNode_Events(t *testing.T) {
	box := El("input", "type", "checkbox")
	var seen []string
	box.AddEventListener("change", func(e *Event) { seen = append(seen, e.Type) })

	box.Click()
	assert.True(t, box.Checked())
	box.Click()
	assert.False(t, box.Checked())
	assert.Equal(t, []string{"change", "change"}, seen)

	btn := El("button")
	btn.AddEventListener("keydown", func(e *Event) {
		if e.Key == "Enter" {
			e.PreventDefault()
		}
	})
	assert.True(t, btn.KeyDown("Enter").DefaultPrevented())
	assert.False(t, btn.KeyDown("a").DefaultPrevented())
}

func TestMemNode_Tree(t *testing.T) {
	parent := El("ul")
	child := El("li")
	parent.AppendChild(child)
	assert.Equal(t, parent, child.Parent())

	other := El("ol")
	other.AppendChild(child)
	assert.Empty(t, parent.Children(), "付け替えると元の親から外れる")

	other.Clear()
	assert.Empty(t, other.Children())
	assert.Nil(t, child.Parent())

	child.SetAttribute("hidden", "")
	assert.True(t, child.HasAttribute("hidden"))
	child.RemoveAttribute("hidden")
	assert.False(t, child.HasAttribute("hidden"))
}
