package loader

import (
	"math"
	"strings"

	"github.com/MatthewFletcher/openrocket/internal/document"
	"github.com/MatthewFletcher/openrocket/internal/markup"
	"github.com/MatthewFletcher/openrocket/internal/parsekit"
	"github.com/MatthewFletcher/openrocket/internal/warnset"
)

// flightDataHandler reads a flightdata element. Data branches and stored
// warnings are collected as they close; when the element itself closes the
// result is either a branch record or, with no usable branches, a summary
// built from the element's attributes.
type flightDataHandler struct {
	markup.BaseHandler

	branch     *branchHandler
	branchSet  warnset.Set
	branches   []*document.FlightDataBranch
	flightData *document.FlightData
}

func newFlightDataHandler() *flightDataHandler {
	return &flightDataHandler{}
}

// FlightData returns the assembled record, nil until the element closed.
func (h *flightDataHandler) FlightData() *document.FlightData {
	return h.flightData
}

func (h *flightDataHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	switch element {
	case "warning":
		return markup.PlainText, nil

	case "databranch":
		name, okName := attrs["name"]
		types, okTypes := attrs["types"]
		if !okName || !okTypes {
			warnings.AddfIn(warnset.CategoryFlightData, "Illegal flight data definition, ignoring.")
			return nil, nil
		}
		branch, err := newBranchHandler(name, types)
		if err != nil {
			warnings.AddfIn(warnset.CategoryFlightData, "Illegal flight data definition, ignoring.")
			return nil, nil
		}
		h.branch = branch
		return branch, nil
	}

	warnings.Addf("Unknown element '%s' encountered, ignoring.", element)
	return nil, nil
}

func (h *flightDataHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	switch element {
	case "databranch":
		branch := h.branch.Branch()
		if branch.Len() > 0 {
			h.branches = append(h.branches, branch)
		}
	case "warning":
		h.branchSet.Addf("%s", content)
	}
	return nil
}

func (h *flightDataHandler) EndHandler(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	if len(h.branches) > 0 {
		h.flightData = document.NewFlightData(h.branches)
	} else {
		h.flightData = document.NewFlightDataSummary(
			summaryAttr(attrs, "maxaltitude"),
			summaryAttr(attrs, "maxvelocity"),
			summaryAttr(attrs, "maxacceleration"),
			summaryAttr(attrs, "maxmach"),
			summaryAttr(attrs, "timetoapogee"),
			summaryAttr(attrs, "flighttime"),
			summaryAttr(attrs, "groundhitvelocity"),
		)
	}
	h.flightData.Warnings.AddAll(&h.branchSet)
	return nil
}

// summaryAttr parses one summary figure, NaN when absent or malformed.
func summaryAttr(attrs map[string]string, name string) float64 {
	v, ok := attrs[name]
	if !ok {
		return math.NaN()
	}
	d, err := parsekit.ParseDouble(v)
	if err != nil {
		return math.NaN()
	}
	return d
}

// branchHandler fills one data branch with sample rows and events.
type branchHandler struct {
	markup.BaseHandler
	channels []string
	branch   *document.FlightDataBranch
}

func newBranchHandler(name, typeList string) (*branchHandler, error) {
	channels := strings.Split(typeList, ",")
	branch, err := document.NewBranch(name, channels)
	if err != nil {
		return nil, err
	}
	return &branchHandler{channels: channels, branch: branch}, nil
}

// Branch freezes and returns the branch.
func (h *branchHandler) Branch() *document.FlightDataBranch {
	h.branch.Immute()
	return h.branch
}

func (h *branchHandler) OpenElement(element string, attrs map[string]string, warnings *warnset.Set) (markup.ElementHandler, error) {
	if element == "datapoint" || element == "event" {
		return markup.PlainText, nil
	}
	warnings.Addf("Unknown element '%s' encountered, ignoring.", element)
	return nil, nil
}

func (h *branchHandler) CloseElement(element string, attrs map[string]string, content string, warnings *warnset.Set) error {
	if element == "event" {
		time, err := parsekit.ParseDouble(attrs["time"])
		if err != nil {
			warnings.AddfIn(warnset.CategoryFlightData, "Illegal event specification, ignoring.")
			return nil
		}
		typ, ok := document.EventTypeFromName(attrs["type"])
		if !ok {
			warnings.AddfIn(warnset.CategoryFlightData, "Illegal event specification, ignoring.")
			return nil
		}
		return h.branch.AddEvent(document.FlightEvent{Type: typ, Time: time})
	}

	if element != "datapoint" {
		warnings.Addf("Unknown element '%s' encountered, ignoring.", element)
		return nil
	}

	fields := strings.Split(content, ",")
	if len(fields) != len(h.channels) {
		warnings.AddfIn(warnset.CategoryFlightData, "Data point did not contain correct amount of values, ignoring point.")
		return nil
	}

	values, err := parsekit.SplitValues(content)
	if err != nil {
		warnings.AddfIn(warnset.CategoryFlightData, "Data point format error, ignoring point.")
		return nil
	}

	return h.branch.AddRow(values)
}
