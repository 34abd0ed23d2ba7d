package loader

import (
	"math"
	"strings"

	"github.com/MatthewFletcher/openrocket/internal/document"
	"github.com/MatthewFletcher/openrocket/internal/markup"
	"github.com/MatthewFletcher/openrocket/internal/parsekit"
	"github.com/MatthewFletcher/openrocket/internal/warnset"
)

// simulationsHandler reads the simulations element, one simulation child
// at a time.
type simulationsHandler struct {
	markup.BaseHandler
	doc *document.Document
}

func newSimulationsHandler(doc *document.Document) *simulationsHandler {
	return &simulationsHandler{doc: doc}
}

func (h *simulationsHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	if element != "simulation" {
		warnings.Addf("Unknown element '%s', ignoring.", element)
		return nil, nil
	}
	return newSingleSimulationHandler(h.doc), nil
}

func (h *simulationsHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	delete(attrs, "status")
	return h.BaseHandler.CloseElement(element, attrs, content, warnings)
}

// singleSimulationHandler assembles one simulation record from its name,
// engine checks, conditions and optional flight data.
type singleSimulationHandler struct {
	markup.BaseHandler
	doc *document.Document

	name       string
	listeners  []string
	conditions *conditionsHandler
	data       *flightDataHandler
}

func newSingleSimulationHandler(doc *document.Document) *singleSimulationHandler {
	return &singleSimulationHandler{doc: doc}
}

func (h *singleSimulationHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	switch element {
	case "name", "simulator", "calculator", "listener":
		return markup.PlainText, nil
	case "conditions":
		h.conditions = newConditionsHandler(h.doc)
		return h.conditions, nil
	case "flightdata":
		h.data = newFlightDataHandler()
		return h.data, nil
	}
	warnings.Addf("Unknown element '%s', ignoring.", element)
	return nil, nil
}

func (h *singleSimulationHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	switch element {
	case "name":
		h.name = content
	case "simulator":
		if strings.TrimSpace(content) != "RK4Simulator" {
			warnings.Addf("Unknown simulator '%s' specified, ignoring.", strings.TrimSpace(content))
		}
	case "calculator":
		if strings.TrimSpace(content) != "BarrowmanCalculator" {
			warnings.Addf("Unknown calculator '%s' specified, ignoring.", strings.TrimSpace(content))
		}
	case "listener":
		if l := strings.TrimSpace(content); l != "" {
			h.listeners = append(h.listeners, l)
		}
	}
	return nil
}

func (h *singleSimulationHandler) EndHandler(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	status, ok := document.StatusFromName(attrs["status"])
	if !ok {
		warnings.Addf("Simulation status unknown, assuming outdated.")
		status = document.StatusOutdated
	}

	var conditions *document.SimulationConditions
	if h.conditions != nil {
		conditions = h.conditions.Conditions()
	} else {
		warnings.Addf("Simulation conditions not defined, using defaults.")
		conditions = document.NewConditions(h.doc.Rocket)
	}

	name := h.name
	if name == "" {
		name = "Simulation"
	}

	var data *document.FlightData
	if h.data != nil {
		data = h.data.FlightData()
	}

	h.doc.AddSimulation(&document.Simulation{
		Name:       name,
		Status:     status,
		Conditions: conditions,
		Listeners:  h.listeners,
		Data:       data,
	})
	return nil
}

// conditionsHandler reads the launch-site and integration parameters of a
// simulation.
type conditionsHandler struct {
	markup.BaseHandler
	conditions *document.SimulationConditions
	atmosphere *atmosphereHandler
}

func newConditionsHandler(doc *document.Document) *conditionsHandler {
	return &conditionsHandler{conditions: document.NewConditions(doc.Rocket)}
}

// Conditions returns the parsed conditions record.
func (h *conditionsHandler) Conditions() *document.SimulationConditions {
	return h.conditions
}

func (h *conditionsHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	if element == "atmosphere" {
		h.atmosphere = newAtmosphereHandler(attrs["model"])
		return h.atmosphere, nil
	}
	return markup.PlainText, nil
}

func (h *conditionsHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	if element == "configid" {
		h.conditions.MotorConfigID = content
		return nil
	}
	if element == "atmosphere" {
		h.atmosphere.storeSettings(h.conditions, warnings)
		return nil
	}

	d, err := parsekit.ParseDouble(content)
	valid := err == nil && !math.IsNaN(d)

	switch element {
	case "launchrodlength":
		if !valid {
			warnings.Addf("Illegal launch rod length defined, ignoring.")
		} else {
			h.conditions.LaunchRodLength = d
		}
	case "launchrodangle":
		if !valid {
			warnings.Addf("Illegal launch rod angle defined, ignoring.")
		} else {
			h.conditions.LaunchRodAngle = d * degToRad
		}
	case "launchroddirection":
		if !valid {
			warnings.Addf("Illegal launch rod direction defined, ignoring.")
		} else {
			h.conditions.LaunchRodDirection = d * degToRad
		}
	case "windaverage":
		if !valid {
			warnings.Addf("Illegal average windspeed defined, ignoring.")
		} else {
			h.conditions.WindAverage = d
		}
	case "windturbulence":
		if !valid {
			warnings.Addf("Illegal wind turbulence intensity defined, ignoring.")
		} else {
			h.conditions.WindTurbulence = d
		}
	case "launchaltitude":
		if !valid {
			warnings.Addf("Illegal launch altitude defined, ignoring.")
		} else {
			h.conditions.LaunchAltitude = d
		}
	case "launchlatitude":
		if !valid {
			warnings.Addf("Illegal launch latitude defined, ignoring.")
		} else {
			h.conditions.LaunchLatitude = d
		}
	case "timestep":
		if !valid {
			warnings.Addf("Illegal time step defined, ignoring.")
		} else {
			h.conditions.TimeStep = d
		}
	}
	return nil
}

// atmosphereHandler reads the atmosphere element and applies its model and
// base overrides to the conditions when the element closes.
type atmosphereHandler struct {
	markup.BaseHandler
	model       string
	temperature float64
	pressure    float64
	hasTemp     bool
	hasPressure bool
}

func newAtmosphereHandler(model string) *atmosphereHandler {
	return &atmosphereHandler{model: model}
}

func (h *atmosphereHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	return markup.PlainText, nil
}

func (h *atmosphereHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	switch element {
	case "basetemperature":
		d, err := parsekit.ParseDouble(content)
		if err != nil || math.IsNaN(d) {
			warnings.Addf("Illegal base temperature specified, ignoring.")
			return nil
		}
		h.temperature = d
		h.hasTemp = true
		return nil

	case "basepressure":
		d, err := parsekit.ParseDouble(content)
		if err != nil || math.IsNaN(d) {
			warnings.Addf("Illegal base pressure specified, ignoring.")
			return nil
		}
		h.pressure = d
		h.hasPressure = true
		return nil
	}

	return h.BaseHandler.CloseElement(element, attrs, content, warnings)
}

func (h *atmosphereHandler) storeSettings(cond *document.SimulationConditions, warnings *warnset.Set) {
	if h.hasPressure {
		cond.LaunchPressure = h.pressure
	}
	if h.hasTemp {
		cond.LaunchTemperature = h.temperature
	}

	switch h.model {
	case "isa":
		cond.ISAAtmosphere = true
	case "extendedisa":
		cond.ISAAtmosphere = false
	default:
		cond.ISAAtmosphere = true
		warnings.Addf("Unknown atmospheric model, using ISA.")
	}
}
