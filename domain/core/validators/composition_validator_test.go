package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/rodrigogurgel/catalog-sub001/pkg/errors"
)

func option(id string, available bool, nested ...CustomizationNode) OptionNode {
	return OptionNode{ID: id, Available: available, Customizations: nested}
}

func customization(id string, max int, options ...OptionNode) CustomizationNode {
	return CustomizationNode{ID: id, MaxPermitted: max, Options: options}
}

func detailIDs(t *testing.T, err error) []string {
	t.Helper()
	domainErr := pkgerrors.GetDomainError(err)
	require.NotNil(t, domainErr)
	ids, ok := domainErr.Details["ids"].([]string)
	require.True(t, ok)
	return ids
}

func TestValidateCustomizations_Valid(t *testing.T) {
	v := NewCompositionValidator()

	tree := []CustomizationNode{
		customization("size", 1, option("small", true), option("large", true)),
		customization("extras", 2,
			option("cheese", true),
			option("bacon", true, customization("bacon-style", 1, option("crispy", true))),
			option("egg", false),
		),
	}

	assert.NoError(t, v.ValidateCustomizations(tree))
	assert.NoError(t, v.ValidateCustomizations(nil))
}

func TestValidateCustomizations_DuplicatedCustomization(t *testing.T) {
	v := NewCompositionValidator()

	tree := []CustomizationNode{
		customization("a", 1, option("x", true)),
		customization("b", 1, option("x", true)),
		customization("a", 1, option("y", true)),
		customization("b", 1, option("z", true)),
		customization("a", 1, option("w", true)),
	}

	err := v.ValidateCustomizations(tree)
	assert.ErrorIs(t, err, pkgerrors.ErrDuplicatedCustomization)
	assert.Equal(t, []string{"a", "b"}, detailIDs(t, err))
}

func TestValidateCustomization_DuplicatedOption(t *testing.T) {
	v := NewCompositionValidator()

	err := v.ValidateCustomization(customization("c", 1, option("dup", true), option("other", true), option("dup", true)))

	assert.ErrorIs(t, err, pkgerrors.ErrDuplicatedOption)
	assert.Equal(t, []string{"dup"}, detailIDs(t, err))
}

func TestValidateCustomization_MaxPermittedAgainstAvailableOptions(t *testing.T) {
	v := NewCompositionValidator()

	twoAvailable := customization("c", 3, option("a", true), option("b", true), option("off", false))
	err := v.ValidateCustomization(twoAvailable)
	assert.ErrorIs(t, err, pkgerrors.ErrCustomizationPermittedExceedsOpts)
	assert.Equal(t, "c", pkgerrors.GetDomainError(err).Details["customization_id"])

	threeAvailable := customization("c", 3, option("a", true), option("b", true), option("d", true))
	assert.NoError(t, v.ValidateCustomization(threeAvailable))

	fourAvailable := customization("c", 3, option("a", true), option("b", true), option("d", true), option("e", true))
	assert.NoError(t, v.ValidateCustomization(fourAvailable))
}

func TestValidateCustomization_EmptyOptions(t *testing.T) {
	v := NewCompositionValidator()

	err := v.ValidateCustomization(customization("empty", 1))

	assert.ErrorIs(t, err, pkgerrors.ErrCustomizationOptionsEmpty)
	assert.Equal(t, "empty", pkgerrors.GetDomainError(err).Details["customization_id"])
}

func TestValidateCustomizations_RecursesIntoNestedOptions(t *testing.T) {
	v := NewCompositionValidator()

	deep := customization("level-3", 1, option("leaf", true), option("leaf", true))
	tree := []CustomizationNode{
		customization("level-1", 1,
			option("o1", true,
				customization("level-2", 1,
					option("o2", true, deep),
				),
			),
		),
	}

	err := v.ValidateCustomizations(tree)
	assert.ErrorIs(t, err, pkgerrors.ErrDuplicatedOption)
	assert.Equal(t, "level-3", pkgerrors.GetDomainError(err).Details["customization_id"])
}

func TestValidateOption(t *testing.T) {
	v := NewCompositionValidator()

	o := option("o", true,
		customization("same", 1, option("a", true)),
		customization("same", 1, option("b", true)),
	)

	assert.ErrorIs(t, v.ValidateOption(o), pkgerrors.ErrDuplicatedCustomization)
}
