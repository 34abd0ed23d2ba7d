package loader

import (
	"log/slog"

	"github.com/MatthewFletcher/openrocket/internal/markup"
	"github.com/MatthewFletcher/openrocket/internal/parsekit"
	"github.com/MatthewFletcher/openrocket/internal/rocket"
	"github.com/MatthewFletcher/openrocket/internal/warnset"
)

// componentHandler instantiates child components from their element tags
// and hands each subtree to a parameter handler.
type componentHandler struct {
	markup.BaseHandler
	parent *rocket.Component
	finder MotorFinder
}

func newComponentHandler(parent *rocket.Component, finder MotorFinder) *componentHandler {
	return &componentHandler{parent: parent, finder: finder}
}

func (h *componentHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	kind, ok := factories[element]
	if !ok {
		warnings.Addf("Unknown element %s, ignoring.", element)
		return nil, nil
	}

	c := rocket.New(kind)
	h.parent.AddChild(c)
	return newComponentParameterHandler(c, h.finder), nil
}

// componentParameterHandler populates one component. Most child elements
// are parameters resolved through the setter registry; a few introduce
// nested structure and get their own handlers.
type componentParameterHandler struct {
	markup.BaseHandler
	component *rocket.Component
	finder    MotorFinder
}

func newComponentParameterHandler(c *rocket.Component, finder MotorFinder) *componentParameterHandler {
	return &componentParameterHandler{component: c, finder: finder}
}

func (h *componentParameterHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	switch element {
	case "subcomponents":
		return newComponentHandler(h.component, h.finder), nil

	case "motormount":
		if !h.component.Kind.SupportsMotorMount() {
			warnings.Addf("Illegal component defined as motor mount.")
			return nil, nil
		}
		return newMotorMountHandler(h.component.MountRecord(), h.finder), nil

	case "finpoints":
		if !h.component.Kind.HasFreeformOutline() {
			warnings.Addf("Illegal component defined for fin points.")
			return nil, nil
		}
		return newFinPointHandler(h.component), nil

	case "motorconfiguration":
		if h.component.Kind != rocket.KindRocket {
			warnings.Addf("Illegal component defined for motor configuration.")
			return nil, nil
		}
		return newMotorConfigurationHandler(h.component.Rocket), nil
	}

	return markup.PlainText, nil
}

func (h *componentParameterHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	switch element {
	case "subcomponents", "motormount", "finpoints", "motorconfiguration":
		return nil
	}

	setter, result := lookupSetter(h.component.Kind, element)
	switch result {
	case setterFound:
		slog.Debug("setting component parameter",
			"kind", h.component.Kind, "param", element)
		setter.Set(h.component, content, attrs, warnings)
	case setterDisallowed, setterNotFound:
		warnings.Addf("Unknown parameter type '%s' for %s, ignoring.",
			element, h.component.Kind.DisplayName())
	}
	return nil
}

// finPointHandler collects the point elements of a freeform fin outline
// and applies the complete outline when the finpoints element closes.
type finPointHandler struct {
	markup.BaseHandler
	finset *rocket.Component
	points []rocket.Coordinate
}

func newFinPointHandler(finset *rocket.Component) *finPointHandler {
	return &finPointHandler{finset: finset}
}

func (h *finPointHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	return markup.PlainText, nil
}

func (h *finPointHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	strx, okx := attrs["x"]
	stry, oky := attrs["y"]
	delete(attrs, "x")
	delete(attrs, "y")
	if !okx || !oky {
		warnings.Addf("Illegal fin points specification, ignoring.")
		return nil
	}

	x, errx := parsekit.ParseDouble(strx)
	y, erry := parsekit.ParseDouble(stry)
	if errx != nil || erry != nil {
		warnings.Addf("Illegal fin points specification, ignoring.")
		return nil
	}

	h.points = append(h.points, rocket.Coordinate{X: x, Y: y})
	return h.BaseHandler.CloseElement(element, attrs, content, warnings)
}

func (h *finPointHandler) EndHandler(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	if err := h.finset.SetFreeformOutline(h.points); err != nil {
		warnings.Addf("Freeform fin set point definitions illegal, ignoring.")
	}
	return nil
}
