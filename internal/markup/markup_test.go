package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MatthewFletcher/openrocket/internal/warnset"
)

// recordingHandler accepts children whose names appear in accept, returning
// itself for nested elements and PlainText for leaves.
type recordingHandler struct {
	BaseHandler
	accept map[string]bool
	opens  []string
	closes []string
	texts  map[string]string
	ends   int
}

func newRecordingHandler(accept ...string) *recordingHandler {
	m := make(map[string]bool, len(accept))
	for _, a := range accept {
		m[a] = true
	}
	return &recordingHandler{accept: m, texts: make(map[string]string)}
}

func (h *recordingHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (ElementHandler, error) {
	h.opens = append(h.opens, element)
	if !h.accept[element] {
		warnings.Addf("Unknown element '" + element + "', ignoring.")
		return nil, nil
	}
	if strings.HasPrefix(element, "leaf") {
		return PlainText, nil
	}
	return h, nil
}

func (h *recordingHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	h.closes = append(h.closes, element)
	h.texts[element] = strings.TrimSpace(content)
	return nil
}

func (h *recordingHandler) EndHandler(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	h.ends++
	return nil
}

func TestRun_DispatchAndText(t *testing.T) {
	doc := `<?xml version="1.0"?>
<root>
  <leafa>hello</leafa>
  <inner>
    <leafb> nested text </leafb>
  </inner>
</root>`

	h := newRecordingHandler("root", "inner", "leafa", "leafb")
	var warnings warnset.Set
	require.NoError(t, Run(strings.NewReader(doc), h, &warnings))

	assert.Equal(t, []string{"root", "leafa", "inner", "leafb"}, h.opens)
	assert.Equal(t, []string{"leafa", "leafb", "inner", "root"}, h.closes)
	assert.Equal(t, "hello", h.texts["leafa"])
	assert.Equal(t, "nested text", h.texts["leafb"])
	assert.Equal(t, 0, warnings.Len())
}

func TestRun_SkipsUnknownSubtree(t *testing.T) {
	doc := `<root>
  <mystery><deeply><nested>ignored</nested></deeply></mystery>
  <leafa>kept</leafa>
</root>`

	h := newRecordingHandler("root", "leafa")
	var warnings warnset.Set
	require.NoError(t, Run(strings.NewReader(doc), h, &warnings))

	// The skipped subtree's inner elements never reach the handler.
	assert.Equal(t, []string{"root", "mystery", "leafa"}, h.opens)
	assert.Equal(t, []string{"leafa", "root"}, h.closes)
	assert.Equal(t, 1, warnings.Len())
}

func TestRun_AttributesDelivered(t *testing.T) {
	doc := `<root><leafa x="0.1" y="0.2">t</leafa></root>`

	var gotAttrs map[string]string
	h := &attrCapture{accept: newRecordingHandler("root", "leafa"), captured: &gotAttrs}
	var warnings warnset.Set
	require.NoError(t, Run(strings.NewReader(doc), h, &warnings))

	require.NotNil(t, gotAttrs)
	assert.Equal(t, "0.1", gotAttrs["x"])
	assert.Equal(t, "0.2", gotAttrs["y"])
}

type attrCapture struct {
	accept   *recordingHandler
	captured *map[string]string
}

func (h *attrCapture) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (ElementHandler, error) {
	if element == "leafa" {
		*h.captured = attrs
	}
	child, err := h.accept.OpenElement(element, attrs, warnings)
	if child == ElementHandler(h.accept) {
		// Stay in the dispatch path for nested elements.
		return h, err
	}
	return child, err
}

func (h *attrCapture) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	return h.accept.CloseElement(element, attrs, content, warnings)
}

func (h *attrCapture) EndHandler(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	return h.accept.EndHandler(element, attrs, content, warnings)
}

func TestRun_MalformedXMLIsFatal(t *testing.T) {
	doc := `<root><unclosed></root>`

	h := newRecordingHandler("root", "unclosed")
	var warnings warnset.Set
	err := Run(strings.NewReader(doc), h, &warnings)

	var se *SyntaxError
	require.ErrorAs(t, err, &se)
}

func TestRun_TruncatedDocumentIsFatal(t *testing.T) {
	doc := `<root><leafa>text`

	h := newRecordingHandler("root", "leafa")
	var warnings warnset.Set
	err := Run(strings.NewReader(doc), h, &warnings)
	assert.Error(t, err)
}

func TestPlainTextHandler_RejectsChildren(t *testing.T) {
	doc := `<root><leafa>text <b>bold</b> more</leafa></root>`

	h := newRecordingHandler("root", "leafa")
	var warnings warnset.Set
	require.NoError(t, Run(strings.NewReader(doc), h, &warnings))

	// The nested element is warned about and skipped; surrounding text
	// is still accumulated.
	assert.Equal(t, 1, warnings.Len())
	assert.Equal(t, "text  more", h.texts["leafa"])
}

func TestBaseHandler_WarnsOnLeftovers(t *testing.T) {
	var warnings warnset.Set
	var b BaseHandler

	require.NoError(t, b.CloseElement("elem", nil, "  ", &warnings))
	assert.Equal(t, 0, warnings.Len())

	require.NoError(t, b.CloseElement("elem", nil, "stray", &warnings))
	assert.Equal(t, 1, warnings.Len())

	require.NoError(t, b.CloseElement("elem", map[string]string{"a": "1"}, "", &warnings))
	assert.Equal(t, 2, warnings.Len())
}
