package validators

import (
	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

// CustomizationNode is the validation view of a customization: only the
// fields the composition rules look at. Entities build these views so the
// validator never holds references into entity state.
type CustomizationNode struct {
	ID           string
	MaxPermitted int
	Options      []OptionNode
}

// OptionNode is the validation view of an option
type OptionNode struct {
	ID             string
	Available      bool
	Customizations []CustomizationNode
}

// CompositionValidator enforces the offer tree rules. The walk is top-down and
// stops at the first violated rule.
type CompositionValidator struct{}

// NewCompositionValidator creates a composition validator
func NewCompositionValidator() *CompositionValidator {
	return &CompositionValidator{}
}

// ValidateCustomizations checks a sibling list of customizations and everything below it
func (v *CompositionValidator) ValidateCustomizations(customizations []CustomizationNode) error {
	if dups := duplicatedIDs(len(customizations), func(i int) string { return customizations[i].ID }); len(dups) > 0 {
		return pkgerrors.NewDuplicatedCustomization(dups)
	}

	for _, c := range customizations {
		if err := v.ValidateCustomization(c); err != nil {
			return err
		}
	}
	return nil
}

// ValidateCustomization checks one customization and everything below it
func (v *CompositionValidator) ValidateCustomization(c CustomizationNode) error {
	if len(c.Options) == 0 {
		return pkgerrors.NewCustomizationOptionsEmpty(c.ID)
	}

	if dups := duplicatedIDs(len(c.Options), func(i int) string { return c.Options[i].ID }); len(dups) > 0 {
		return pkgerrors.NewDuplicatedOption(c.ID, dups)
	}

	available := 0
	for _, o := range c.Options {
		if o.Available {
			available++
		}
	}
	if c.MaxPermitted > available {
		return pkgerrors.NewCustomizationPermittedExceedsOptions(c.ID, c.MaxPermitted, available)
	}

	for _, o := range c.Options {
		if err := v.ValidateCustomizations(o.Customizations); err != nil {
			return err
		}
	}
	return nil
}

// ValidateOption checks the customizations nested under a single option
func (v *CompositionValidator) ValidateOption(o OptionNode) error {
	return v.ValidateCustomizations(o.Customizations)
}

// duplicatedIDs compares siblings pairwise and returns each id that appears
// more than once, in first-seen order. Fan-out is small, so O(n²) is fine.
func duplicatedIDs(n int, idAt func(int) string) []string {
	var dups []string
	for i := 0; i < n; i++ {
		id := idAt(i)
		seenBefore := false
		for j := 0; j < i; j++ {
			if idAt(j) == id {
				seenBefore = true
				break
			}
		}
		if seenBefore {
			continue
		}
		for j := i + 1; j < n; j++ {
			if idAt(j) == id {
				dups = append(dups, id)
				break
			}
		}
	}
	return dups
}
