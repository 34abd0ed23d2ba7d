package loader

import (
	"math"
	"strings"

	"github.com/MatthewFletcher/openrocket/internal/markup"
	"github.com/MatthewFletcher/openrocket/internal/parsekit"
	"github.com/MatthewFletcher/openrocket/internal/rocket"
	"github.com/MatthewFletcher/openrocket/internal/warnset"
)

// motorMountHandler reads a motormount element: per-configuration motor
// assignments plus the mount's ignition parameters.
type motorMountHandler struct {
	markup.BaseHandler
	mount  *rocket.MotorMount
	finder MotorFinder
	motor  *motorHandler
}

func newMotorMountHandler(mount *rocket.MotorMount, finder MotorFinder) *motorMountHandler {
	return &motorMountHandler{mount: mount, finder: finder}
}

func (h *motorMountHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	switch element {
	case "motor":
		h.motor = newMotorHandler(h.finder)
		return h.motor, nil
	case "ignitionevent", "ignitiondelay", "overhang":
		return markup.PlainText, nil
	}
	warnings.Addf("Unknown element '%s' encountered, ignoring.", element)
	return nil, nil
}

func (h *motorMountHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	switch element {
	case "motor":
		id := attrs["configid"]
		if id == "" {
			warnings.Addf("Illegal motor specification, ignoring.")
			return nil
		}
		h.mount.SetMotor(id, h.motor.Motor(warnings))
		h.mount.SetDelay(id, h.motor.Delay(warnings))
		return nil

	case "ignitionevent":
		event, ok := rocket.IgnitionEventFromName(content)
		if !ok {
			warnings.Addf("Unknown ignition event type '%s', ignoring.", content)
			return nil
		}
		h.mount.IgnitionEvent = event
		return nil

	case "ignitiondelay":
		d, err := parsekit.ParseDouble(content)
		if err != nil {
			warnings.Addf("Illegal ignition delay specified, ignoring.")
			return nil
		}
		h.mount.IgnitionDelay = d
		return nil

	case "overhang":
		d, err := parsekit.ParseDouble(content)
		if err != nil {
			warnings.Addf("Illegal overhang specified, ignoring.")
			return nil
		}
		h.mount.Overhang = d
		return nil
	}

	return h.BaseHandler.CloseElement(element, attrs, content, warnings)
}

// motorHandler accumulates the search criteria of one motor element and
// resolves them against the motor database when asked.
type motorHandler struct {
	markup.BaseHandler
	finder MotorFinder

	typ          *rocket.MotorType
	manufacturer string
	designation  string
	diameter     float64
	length       float64
	delay        float64
}

func newMotorHandler(finder MotorFinder) *motorHandler {
	return &motorHandler{
		finder:   finder,
		diameter: math.NaN(),
		length:   math.NaN(),
		delay:    math.NaN(),
	}
}

func (h *motorHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	return markup.PlainText, nil
}

// Motor resolves the accumulated criteria to a database entry, or nil with
// a warning when none or several match.
func (h *motorHandler) Motor(warnings *warnset.Set) *rocket.Motor {
	if h.designation == "" {
		warnings.AddfIn(warnset.CategoryMotor, "No motor specified, ignoring.")
		return nil
	}

	motors, err := h.finder.FindMotors(h.typ, h.manufacturer, h.designation, h.diameter, h.length)
	if err != nil {
		warnings.AddfIn(warnset.CategoryMotor, "Motor database lookup failed, ignoring motor.")
		return nil
	}

	if len(motors) == 0 {
		msg := "No motor with designation '" + h.designation + "'"
		if h.manufacturer != "" {
			msg += " for manufacturer '" + h.manufacturer + "'"
		}
		warnings.AddfIn(warnset.CategoryMotor, "%s found.", msg)
		return nil
	}
	if len(motors) > 1 {
		msg := "Multiple motors with designation '" + h.designation + "'"
		if h.manufacturer != "" {
			msg += " for manufacturer '" + h.manufacturer + "'"
		}
		warnings.AddfIn(warnset.CategoryMotor, "%s found, one chosen arbitrarily.", msg)
	}
	return &motors[0]
}

// Delay returns the ejection delay to use, warning and assuming a plugged
// motor when the document specified none.
func (h *motorHandler) Delay(warnings *warnset.Set) float64 {
	if math.IsNaN(h.delay) {
		warnings.AddfIn(warnset.CategoryMotor, "Motor delay not specified, assuming no ejection charge.")
		return rocket.MotorPlugged
	}
	return h.delay
}

func (h *motorHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	content = strings.TrimSpace(content)

	switch element {
	case "type":
		typ, ok := rocket.MotorTypeFromName(content)
		if !ok {
			h.typ = nil
			warnings.Addf("Unknown motor type '%s', ignoring.", content)
			return nil
		}
		h.typ = &typ
		return nil

	case "manufacturer":
		h.manufacturer = content
		return nil

	case "designation":
		h.designation = content
		return nil

	case "diameter":
		d, err := parsekit.ParseDouble(content)
		if err != nil || math.IsNaN(d) {
			h.diameter = math.NaN()
			warnings.Addf("Illegal motor diameter specified, ignoring.")
			return nil
		}
		h.diameter = d
		return nil

	case "length":
		d, err := parsekit.ParseDouble(content)
		if err != nil || math.IsNaN(d) {
			h.length = math.NaN()
			warnings.Addf("Illegal motor length specified, ignoring.")
			return nil
		}
		h.length = d
		return nil

	case "delay":
		if content == "none" {
			h.delay = rocket.MotorPlugged
			return nil
		}
		d, err := parsekit.ParseDouble(content)
		if err != nil || math.IsNaN(d) {
			h.delay = math.NaN()
			warnings.Addf("Illegal motor delay specified, ignoring.")
			return nil
		}
		h.delay = d
		return nil
	}

	return h.BaseHandler.CloseElement(element, attrs, content, warnings)
}

// motorConfigurationHandler registers one motor configuration id on the
// rocket, with an optional display name and default marker.
type motorConfigurationHandler struct {
	markup.BaseHandler
	rocket *rocket.RocketAttrs
	name   string
	inName bool
}

func newMotorConfigurationHandler(attrs *rocket.RocketAttrs) *motorConfigurationHandler {
	return &motorConfigurationHandler{rocket: attrs}
}

func (h *motorConfigurationHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	if h.inName || element != "name" {
		warnings.Add(warnset.InvalidParameter)
		return nil, nil
	}
	h.inName = true
	return markup.PlainText, nil
}

func (h *motorConfigurationHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	h.name = content
	return nil
}

func (h *motorConfigurationHandler) EndHandler(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	configID := attrs["configid"]
	delete(attrs, "configid")
	if configID == "" {
		warnings.Add(warnset.InvalidParameter)
		return nil
	}

	if !h.rocket.AddConfigurationID(configID) {
		warnings.Addf("Duplicate motor configuration ID used.")
		return nil
	}

	if strings.TrimSpace(h.name) != "" {
		h.rocket.SetConfigurationName(configID, h.name)
	}

	if attrs["default"] == "true" {
		h.rocket.DefaultConfigID = configID
	}
	delete(attrs, "default")

	return h.BaseHandler.CloseElement(element, attrs, content, warnings)
}
