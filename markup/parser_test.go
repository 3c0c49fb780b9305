package markup_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ByLCY/tessera/markup"
)

const sampleMarkup = `
<!-- main window chrome -->
<window size="1280x720" layout="vert">
  <toolbar border="5" gap="8">
    <save size="32x32" />
    <load size="32x32" />
  </toolbar>
  <area>
    <scene/>
    <sidebar size='25%x' title="Tools &amp; Tiles"/>
  </area>
</window>
`

func TestParseWindowSample(t *testing.T) {
	root, err := markup.ParseString(sampleMarkup)
	require.NoError(t, err)

	require.Equal(t, "window", root.Name)
	require.Equal(t, "1280x720", root.Attr("size"))
	require.Equal(t, "vert", root.Attr("layout"))
	require.Len(t, root.Children, 2)

	toolbar := root.Children[0]
	require.Equal(t, "toolbar", toolbar.Name)
	require.Equal(t, map[string]string{"border": "5", "gap": "8"}, toolbar.AttrMap())
	require.Len(t, toolbar.Children, 2)
	require.True(t, toolbar.Children[0].SelfClose)
	require.Equal(t, "save", toolbar.Children[0].Name)

	area := root.Children[1]
	require.Len(t, area.Children, 2)
	sidebar := area.Children[1]
	require.Equal(t, "25%x", sidebar.Attr("size"))
	require.Equal(t, "Tools & Tiles", sidebar.Attr("title"))
	require.Empty(t, sidebar.Attr("missing"))
}

func TestParseReader(t *testing.T) {
	root, err := markup.Parse(strings.NewReader(`<a><b/></a>`))
	require.NoError(t, err)
	require.Equal(t, "a", root.Name)
	require.Len(t, root.Children, 1)
	require.False(t, root.SelfClose)
}

func TestParseMismatchedClose(t *testing.T) {
	_, err := markup.ParseString(`<a><b></c></a>`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "<b>")
	require.Contains(t, err.Error(), "</c>")
}

func TestParseEntities(t *testing.T) {
	root, err := markup.ParseString(`<n v="&lt;x&gt; &quot;q&quot; &apos;a&apos; &amp;amp;"/>`)
	require.NoError(t, err)
	require.Equal(t, `<x> "q" 'a' &amp;`, root.Attr("v"))
}

func TestParseRejectsText(t *testing.T) {
	_, err := markup.ParseString(`<a>stray words</a>`)
	require.Error(t, err)
}

func TestParseRejectsTrailingContent(t *testing.T) {
	_, err := markup.ParseString(`<a/><b/>`)
	require.Error(t, err)
}

func TestParseUnterminatedElement(t *testing.T) {
	_, err := markup.ParseString(`<a><b/>`)
	require.Error(t, err)
}
