package schedule

import (
	"io"

	"gopkg.in/yaml.v3"
)

type yamlPlan struct {
	SlotMs         *int64     `yaml:"slot_ms"`
	FillerEndsSlot bool       `yaml:"filler_ends_slot"`
	Table          [][]string `yaml:"table"`
}

// LoadYAML decodes a YAML plan with the same keys as a Starlark plan:
// `table`, and optionally `slot_ms` and `filler_ends_slot`.
func LoadYAML(name string, r io.Reader) (plan Plan, err error) {
	defer func() {
		if err != nil {
			err = &ErrSyntax{File: name, Err: err}
		}
	}()

	var doc yamlPlan
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err = dec.Decode(&doc)
	if err == io.EOF {
		err = ErrPlanTable
	}
	if err != nil {
		return
	}

	plan = Plan{
		SlotTime:       DEFAULT_SLOT_TIME,
		FillerEndsSlot: doc.FillerEndsSlot,
		Layout:         Layout(doc.Table),
	}
	if doc.SlotMs != nil {
		plan.SlotTime, err = slotTime(*doc.SlotMs)
		if err != nil {
			return
		}
	}

	err = plan.Validate()

	return
}
