package loader

import (
	"strings"

	"github.com/MatthewFletcher/openrocket/internal/document"
	"github.com/MatthewFletcher/openrocket/internal/markup"
	"github.com/MatthewFletcher/openrocket/internal/rocket"
	"github.com/MatthewFletcher/openrocket/internal/warnset"
)

// openRocketHandler is the virtual document root. It accepts exactly one
// openrocket element and checks its format version.
type openRocketHandler struct {
	markup.BaseHandler
	finder  MotorFinder
	content *contentHandler
}

func newOpenRocketHandler(finder MotorFinder) *openRocketHandler {
	return &openRocketHandler{finder: finder}
}

// Document returns the loaded document, or nil if no rocket design was
// read.
func (h *openRocketHandler) Document() *document.Document {
	if h.content == nil {
		return nil
	}
	return h.content.Document()
}

func (h *openRocketHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	if element != "openrocket" {
		warnings.Addf("Unknown element %s, ignoring.", element)
		return nil, nil
	}

	if h.content != nil {
		warnings.Addf("Multiple document elements found, ignoring later ones.")
		return nil, nil
	}

	if version := attrs["version"]; !versionSupported(version) {
		msg := "Unsupported document version"
		if version != "" {
			msg += " " + version
		}
		if creator := strings.TrimSpace(attrs["creator"]); creator != "" {
			msg += " (written using '" + creator + "')"
		}
		warnings.Addf("%s, attempting to read file anyway.", msg)
	}

	h.content = newContentHandler(h.finder)
	return h.content, nil
}

func (h *openRocketHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	delete(attrs, "version")
	delete(attrs, "creator")
	return h.BaseHandler.CloseElement(element, attrs, content, warnings)
}

// contentHandler reads the children of the openrocket element: one rocket
// design and optionally one simulation list.
type contentHandler struct {
	markup.BaseHandler
	finder MotorFinder

	doc    *document.Document
	rocket *rocket.Component

	rocketDefined      bool
	simulationsDefined bool
}

func newContentHandler(finder MotorFinder) *contentHandler {
	rkt := rocket.New(rocket.KindRocket)
	return &contentHandler{
		finder: finder,
		doc:    document.New(rkt),
		rocket: rkt,
	}
}

// Document returns the document, or nil if no rocket element was read.
func (h *contentHandler) Document() *document.Document {
	if !h.rocketDefined {
		return nil
	}
	return h.doc
}

func (h *contentHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	switch element {
	case "rocket":
		if h.rocketDefined {
			warnings.Addf("Multiple rocket designs within one document, ignoring later ones.")
			return nil, nil
		}
		h.rocketDefined = true
		return newComponentParameterHandler(h.rocket, h.finder), nil

	case "simulations":
		if h.simulationsDefined {
			warnings.Addf("Multiple simulation definitions within one document, ignoring later ones.")
			return nil, nil
		}
		h.simulationsDefined = true
		return newSimulationsHandler(h.doc), nil
	}

	warnings.Addf("Unknown element %s, ignoring.", element)
	return nil, nil
}
