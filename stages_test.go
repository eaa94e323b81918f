package vcxml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func transformString(t *testing.T, doc string, stage Stage) string {
	var out bytes.Buffer
	err := Transform([]byte(doc), stage, &out)
	assert.Nil(t, err)
	return out.String()
}

func TestRemoveElementWithIndentation(t *testing.T) {
	// given
	doc := "<ClCompile>\n  <WarningLevel>Level3</WarningLevel>\n</ClCompile>"

	// when
	out := transformString(t, doc, RemoveElements("WarningLevel"))

	// then: the element's own indentation goes with it
	assert.Equal(t, "<ClCompile>\n</ClCompile>", out)
}

func TestRemoveElementSubtree(t *testing.T) {
	// given
	doc := "<Project><ItemGroup><ClCompile Include=\"a.cpp\"/><ClCompile Include=\"b.cpp\"/></ItemGroup><PropertyGroup/></Project>"

	// when
	out := transformString(t, doc, RemoveElements("ItemGroup"))

	// then: everything inside ItemGroup disappears with it
	assert.Equal(t, "<Project><PropertyGroup/></Project>", out)
}

func TestRemoveNestedSameName(t *testing.T) {
	// given: a matching element nested inside a removed one must not
	// terminate the swallow early
	doc := "<a><x><x></x></x><b/></a>"

	// when
	out := transformString(t, doc, RemoveElements("x"))

	// then
	assert.Equal(t, "<a><b/></a>", out)
}

func TestRemoveSelfClosingElement(t *testing.T) {
	// given
	doc := "<ImportGroup>\n  <Import Project=\"a.props\" />\n  <Import Project=\"b.props\" />\n</ImportGroup>"

	// when
	out := transformString(t, doc, RemoveElements("Import"))

	// then
	assert.Equal(t, "<ImportGroup>\n</ImportGroup>", out)
}

func TestRemoveKeepsUnrelatedWhitespace(t *testing.T) {
	// given: whitespace not followed by a removed element passes through
	doc := "<a>\n  <b/>\n  <c/>\n</a>"

	// when
	out := transformString(t, doc, RemoveElements("c"))

	// then
	assert.Equal(t, "<a>\n  <b/>\n</a>", out)
}

func TestRemoveNoMatchIsIdentity(t *testing.T) {
	// given
	doc := "<a>\n  <b attr='odd \"quoting\"'>text &amp; entities</b>\n</a>"

	// when
	out := transformString(t, doc, RemoveElements("nothing"))

	// then
	assert.Equal(t, doc, out)
}

func TestSetElementText(t *testing.T) {
	// given
	doc := "<PropertyGroup>\n  <WarningLevel>Level3</WarningLevel>\n</PropertyGroup>"

	// when
	out := transformString(t, doc, SetElementText("WarningLevel", "Level4"))

	// then: only the text between the tags changes
	assert.Equal(t, "<PropertyGroup>\n  <WarningLevel>Level4</WarningLevel>\n</PropertyGroup>", out)
}

func TestSetElementTextEmptyElement(t *testing.T) {
	// given
	doc := "<a><v></v></a>"

	// when
	out := transformString(t, doc, SetElementText("v", "1"))

	// then
	assert.Equal(t, "<a><v>1</v></a>", out)
}

func TestSetElementTextEscapesValue(t *testing.T) {
	// given
	doc := "<v>old</v>"

	// when
	out := transformString(t, doc, SetElementText("v", "a < b && c"))

	// then
	assert.Equal(t, "<v>a &lt; b &amp;&amp; c</v>", out)
}

func TestSetElementTextSkipsElementsWithChildren(t *testing.T) {
	// given: v contains child markup, so it is not a text-only element
	doc := "<v>pre<w/>post</v>"

	// when
	out := transformString(t, doc, SetElementText("v", "new"))

	// then: the buffered text is replayed untouched
	assert.Equal(t, doc, out)
}

func TestSetElementTextSkipsSelfClosing(t *testing.T) {
	// given
	doc := "<a><v/></a>"

	// when
	out := transformString(t, doc, SetElementText("v", "new"))

	// then
	assert.Equal(t, doc, out)
}

func TestInsertChild(t *testing.T) {
	// given
	doc := "<PropertyGroup>\n  <A>1</A>\n</PropertyGroup>"

	// when
	out := transformString(t, doc, InsertChild("PropertyGroup", "B", "2", "  "))

	// then
	assert.Equal(t, "<PropertyGroup>\n  <B>2</B>\n  <A>1</A>\n</PropertyGroup>", out)
}

func TestInsertChildSkipsSelfClosingParent(t *testing.T) {
	// given
	doc := "<PropertyGroup/>"

	// when
	out := transformString(t, doc, InsertChild("PropertyGroup", "B", "2", "  "))

	// then
	assert.Equal(t, doc, out)
}

func TestCollectText(t *testing.T) {
	// given
	doc := "<Project><PropertyGroup><ProjectGuid>{AAA}</ProjectGuid></PropertyGroup>" +
		"<PropertyGroup><ProjectGuid>{BBB}</ProjectGuid></PropertyGroup></Project>"
	collector := CollectText("ProjectGuid")

	// when
	err := Inspect([]byte(doc), collector)

	// then
	assert.Nil(t, err)
	assert.Equal(t, []string{"{AAA}", "{BBB}"}, collector.Values)
}

func TestCollectTextDisarmsOnNestedMarkup(t *testing.T) {
	// given: only character runs directly inside the element count
	doc := "<v>direct<w>nested</w>tail</v>"
	collector := CollectText("v")

	// when
	err := Inspect([]byte(doc), collector)

	// then
	assert.Nil(t, err)
	assert.Equal(t, []string{"direct"}, collector.Values)
}

func TestCollectTextIgnoresSelfClosing(t *testing.T) {
	// given
	doc := "<v/>text"
	collector := CollectText("v")

	// when
	err := Inspect([]byte(doc), collector)

	// then
	assert.Nil(t, err)
	assert.Empty(t, collector.Values)
}

func TestEventLoggerPassesThrough(t *testing.T) {
	// given
	doc := "<a b=\"1\">text</a>"
	logger := NewEventLogger(zaptest.NewLogger(t))

	// when
	out := transformString(t, doc, logger)

	// then
	assert.Equal(t, doc, out)
}

func TestChainedRemoveAndSet(t *testing.T) {
	// given
	doc := "<PropertyGroup>\n  <WarningLevel>Level3</WarningLevel>\n  <Optimization>Disabled</Optimization>\n</PropertyGroup>"

	// when
	out := transformString(t, doc, Chain(
		RemoveElements("Optimization"),
		SetElementText("WarningLevel", "Level4"),
	))

	// then
	assert.Equal(t, "<PropertyGroup>\n  <WarningLevel>Level4</WarningLevel>\n</PropertyGroup>", out)
}
